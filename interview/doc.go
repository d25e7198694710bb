// Package interview holds interview notes on object-oriented terminology.
//
// Each note is a Routine: a question plus an inert function whose body is the
// answer, written as comments. Calling a routine is a no-op.
//
//	for _, r := range interview.Routines() {
//		r.Run()
//	}
package interview
