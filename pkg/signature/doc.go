// Package signature turns loosely typed configuration values into strictly
// typed D-Bus wire values, driven by a D-Bus type signature string.
//
// Parse reads the signature grammar into a list of complete types. Decode
// walks that list left to right alongside the argument list; every complete
// type consumes exactly one argument, and containers recurse into their
// element or field types. Each type code is handled by an entry in a
// registry keyed by the code byte. A code the grammar knows but the registry
// has no handler for fails with ErrUnsupportedTag.
//
// Supported codes:
//
//	y n q i u x t   integers (byte, int16, uint16, int32, uint32, int64, uint64)
//	d               double
//	b               boolean
//	s o g           string, object path, signature
//	a               array; a{kv} is a dictionary
//	( )             struct
//	v               variant, wire type inferred from the value
//	h               recognized, never decodable (no file descriptors in config)
package signature
