// Package errs defines the closed set of faults the codec can fail with.
//
// Every operation in this module either succeeds or fails with exactly one
// of these sentinel errors. Callers should compare with errors.Is, since
// decoders and encoders may wrap a sentinel with extra context via
// fmt.Errorf("...: %w", err).
package errs

import "errors"

// Kind buckets sentinel errors into the response categories a connection
// facade needs to decide whether to close.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBadPeer
	KindVersionMismatch
	KindResource
	KindTransport
)

var (
	ErrOk                         = errors.New("ok")
	ErrMem                        = errors.New("memory allocation failed")
	ErrConnecting                 = errors.New("connecting")
	ErrSocket                     = errors.New("socket error")
	ErrClosing                    = errors.New("closing")
	ErrRecv                       = errors.New("recv error")
	ErrInvalidPacketLen           = errors.New("invalid packet length")
	ErrZlibInit                   = errors.New("zlib init failed")
	ErrZlibInflate                = errors.New("zlib inflate failed")
	ErrZlibCompress               = errors.New("zlib compress failed")
	ErrSending                    = errors.New("sending failed")
	ErrKickedWhileLogin           = errors.New("kicked while login")
	ErrServerOnlineMode           = errors.New("server online mode mismatch")
	ErrSenderLying                = errors.New("sender lying")
	ErrUnknownPacket              = errors.New("unknown packet")
	ErrMallocZero                 = errors.New("malloc zero")
	ErrInvalidArguments           = errors.New("invalid arguments")
	ErrBufferUnderrun             = errors.New("buffer underrun")
	ErrBufferOverflow             = errors.New("buffer overflow")
	ErrStringLength               = errors.New("string length exceeds limit")
	ErrInvalidString              = errors.New("invalid string")
	ErrInvalidLength              = errors.New("invalid length")
	ErrInvalidTagType             = errors.New("invalid tag type")
	ErrNotImplementedYet          = errors.New("not implemented yet")
	ErrAssert                     = errors.New("assertion failed")
	ErrUnsupportedProtocolVersion = errors.New("unsupported protocol version")
	ErrUnexpectedPacket           = errors.New("unexpected packet")
	ErrReallocZero                = errors.New("realloc zero")
	ErrNegativeStringLength       = errors.New("negative string length")
)

var kinds = map[error]Kind{
	ErrBufferOverflow:       KindBadPeer,
	ErrStringLength:         KindBadPeer,
	ErrInvalidTagType:       KindBadPeer,
	ErrSenderLying:          KindBadPeer,
	ErrNegativeStringLength: KindBadPeer,
	ErrInvalidArguments:     KindBadPeer,

	ErrUnsupportedProtocolVersion: KindVersionMismatch,
	ErrUnexpectedPacket:           KindVersionMismatch,
	ErrUnknownPacket:              KindVersionMismatch,

	ErrMem:         KindResource,
	ErrMallocZero:  KindResource,
	ErrReallocZero: KindResource,

	ErrSocket:  KindTransport,
	ErrRecv:    KindTransport,
	ErrSending: KindTransport,
	ErrClosing: KindTransport,
}

// KindOf classifies err into one of the user-visible fault categories.
// Unrecognized errors (including nil and non-sentinel wraps of
// unrecognized errors) report KindUnknown.
func KindOf(err error) Kind {
	for sentinel, kind := range kinds {
		if errors.Is(err, sentinel) {
			return kind
		}
	}

	return KindUnknown
}

// Fatal reports whether a fault in this category always warrants closing
// the connection, with no caller-opt-out.
func (k Kind) Fatal() bool {
	switch k {
	case KindBadPeer, KindResource:
		return true
	default:
		return false
	}
}
