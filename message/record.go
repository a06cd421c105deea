package message

// Record is any message record. Every type in this package implements
// it via its Free method.
type Record interface {
	Free()
}
