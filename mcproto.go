// Package mcproto implements a wire-protocol codec for a block-world
// client/server game, the kind of protocol popularized by Minecraft:
// a byte cursor, compound field encoders (varints, length-prefixed
// strings, packed block positions, item slots, entity metadata streams),
// and a message catalog that resolves (opcode, phase, direction, protocol
// version) to a stable logical id so the same message can have a
// different wire layout on different protocol versions.
//
// Two protocol versions are supported end to end: v765, a modern
// handshake/status/login/config/play protocol, and v47, a legacy
// handshake/status/login/play protocol with no separate config phase.
//
// # Basic Usage
//
// Driving one side of a connection through a full handshake:
//
//	import (
//	    "github.com/janfel/mcproto"
//	    "github.com/janfel/mcproto/catalog"
//	    "github.com/janfel/mcproto/format"
//	    "github.com/janfel/mcproto/message"
//	)
//
//	client, _ := mcproto.NewClient(format.V765)
//	cur, _ := client.Send(catalog.Handshake, &message.Handshake{
//	    ProtocolVersion: int32(format.V765),
//	    ServerAddr:      "play.example.com",
//	    ServerPort:      25565,
//	    NextState:       1, // status
//	})
//	defer cur.Free()
//
// # Package Structure
//
// This file provides thin convenience wrappers around the conn package.
// For per-message encode/decode control, use codec directly; for the wire
// primitives (varint, packed position, entity metadata, UUID), use
// buffer.
package mcproto

import (
	"github.com/janfel/mcproto/conn"
	"github.com/janfel/mcproto/format"
)

// NewClient returns a Conn representing the client side of a connection
// pinned to version, starting in the handshake phase.
func NewClient(version format.ProtocolVersion) (*conn.Conn, error) {
	return conn.New(version, conn.Client)
}

// NewServer returns a Conn representing the server side of a connection
// pinned to version, starting in the handshake phase.
func NewServer(version format.ProtocolVersion) (*conn.Conn, error) {
	return conn.New(version, conn.Server)
}
