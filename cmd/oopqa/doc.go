// Command oopqa runs the object-oriented interview notes and prints "Done".
//
// Usage
//
//	oopqa [anything ...]
//
// Arguments are accepted and ignored: no flags are parsed, no help or
// completion is offered, and nothing is read from the environment. The
// command always writes exactly "Done\n" to stdout and exits 0.
package main
