// Package output prints routing results for humans.
//
// Styling comes from the styles registry and is resolved against the
// writer it is printed to, so output piped to a file or a test buffer
// carries no color codes.
package output
