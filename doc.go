// Package oopqa is a small study repository of object-oriented interview notes
// written as Go.
//
// The notes live as comments inside inert routines (see interview), which the
// command runs in order before printing a single completion line:
//
//   - interview: the routines (q1, q2) and the questions they answer
//   - app: Program, which runs routines and writes the completion line
//   - logging: zerolog construction for the composition root
//   - cmd/oopqa: the cobra entry point
//
// Running the command prints "Done" and exits 0. Arguments are accepted and
// ignored; nothing is read from the environment or the filesystem.
//
// Import
//
//	"github.com/sghaida/oopqa/interview"
package oopqa
