// Package bus performs remote calls on the D-Bus session bus.
//
// Arguments arrive already typed by the signature package; this package
// only maps them onto the Go representation godbus marshals and waits for
// the reply within a timeout. There is no reconnection or retry.
package bus
