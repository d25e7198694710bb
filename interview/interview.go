package interview

// Routine pairs an interview question with the routine that carries its answer.
//
// Run never has an observable effect: the answer lives in the routine's
// comments, not in anything it executes.
type Routine struct {
	// ID is the short, stable name of the routine ("q1", "q2").
	ID string

	// Question is the prompt the routine's notes answer.
	Question string

	// Run is the routine body.
	Run func()
}

// Routines returns the routines in the order the command runs them.
//
// A fresh slice is returned on every call so callers may reorder or trim it.
func Routines() []Routine {
	return []Routine{
		{
			ID:       "q1",
			Question: "What are the core principles (pillars) of object-oriented programming?",
			Run:      Q1,
		},
		{
			ID:       "q2",
			Question: "What is object-oriented programming?",
			Run:      Q2,
		},
	}
}

// Q1 answers: what are the core principles of OOP?
func Q1() {
	// Four pillars, usually listed in this order:
	//
	// 1) Encapsulation: keep the representation private and expose behaviour
	//    through methods. In Go the unit of privacy is the package; lower-case
	//    identifiers are invisible outside it.
	//
	// 2) Abstraction: show the caller only what it needs. An interface names
	//    the operations a client depends on and says nothing about how they
	//    are carried out.
	//
	// 3) Inheritance: a derived type receives the fields and methods of its
	//    parent. Go has no subclassing; struct embedding promotes the embedded
	//    type's fields and methods, but the outer type is not an instance of
	//    the inner one.
	//
	// 4) Polymorphism: one operation, many behaviours. Different concrete
	//    types are used through the same interface.
	//      - static (compile time): overloading in languages that have it;
	//        Go does not, generics cover part of the ground
	//      - dynamic (run time): overriding; in Go, a method call through an
	//        interface value dispatches on the dynamic type
	//
	//    A value is polymorphic when it satisfies more than one "is-a" check.
	//    Every Go value satisfies `any`.
}

// Q2 answers: what is OOP?
func Q2() {
	// A way of designing programs around objects: values that bundle state
	// with the operations allowed on it, and that cooperate by sending each
	// other requests (method calls).
	//
	// It grew out of procedural programming and is the dominant paradigm in
	// mainstream languages. Go supports the style through methods,
	// interfaces and embedding, without classes.
}
