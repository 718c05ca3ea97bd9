// Package fsesl is an asynchronous client for FreeSWITCH's Event Socket
// Library (ESL) protocol: a line-oriented, header-framed TCP protocol
// used to control a soft-switch telephony server.
//
// A single connection multiplexes two independent streams: synchronous
// command replies routed back to whichever goroutine sent the command,
// and an asynchronous stream of events pushed to a bounded consumer
// queue. [Client] owns the write half and is safe to share across
// goroutines; a background reader goroutine owns the read half and
// never blocks a caller.
//
// The library is transport-pure: it opens and reads/writes a TCP
// connection and reports disconnection, but never reconnects, buffers
// commands across a disconnect, or replays missed events. Reconnection
// policy belongs to the embedding application.
//
// Command builders for originate and its relatives live in the
// sibling [originate] package and have no dependency on this one —
// they are plain string producers/parsers usable without a connection.
package fsesl
