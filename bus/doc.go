// Package bus provides a thin, context-aware handle on a DBus
// connection.
//
// A [Conn] is a connection to a bus, carried by a [Backend]. The
// default backend uses github.com/godbus/dbus/v5 for authentication
// and wire encoding; tests may substitute an in-memory backend.
//
// Remote objects are addressed by value: a [Peer] is a named
// participant on the bus, an [Object] is a path offered by a Peer,
// and an [Interface] is a set of methods and properties implemented
// by an Object. These are cheap to construct and do no I/O until a
// method is called on them.
//
// Signals are delivered through a [Watcher], which filters incoming
// traffic according to one or more [Match] rules.
package bus
