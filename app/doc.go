// Package app wires the interview routines to an output writer.
//
// A Program is built once in the composition root:
//
//	p, err := app.New(app.DefaultConfig(),
//		app.WithOutput(os.Stdout),
//		app.WithLogger(logger),
//	)
//	if err != nil { ... }
//	err = p.Run() // runs q1, q2, then prints "Done"
//
// Wiring goes through di.Service: each option is a di.Injector keyed
// KeyOutput, KeyLogger or KeyRoutines. Wiring mistakes surface from New as
// ErrNilOutput or the di typed errors; output failures surface from Run as
// *WriteError.
package app
