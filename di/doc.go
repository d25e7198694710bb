// Package di provides small, explicit dependency wiring helpers.
//
// A Service[T] holds a constructed value (Val) plus a bag of the dependencies
// recorded against it (Deps). Wiring is done with Injectors, built by
// Injecting, that mutate the Service in place and return typed errors on
// invalid wiring (duplicate keys, nil dependencies, nil bind functions).
//
// There is no container and no reflection-based injection. Wiring stays in
// the composition root; see app.New for the one in this module.
//
// Import
//
//	"github.com/sghaida/oopqa/di"
package di
