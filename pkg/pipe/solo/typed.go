package solo

import "github.com/ib-77/pipeflow/pkg/pipe"

// Flow1 returns f1 itself after checking it is not nil.
func Flow1[A, B any](f1 pipe.Step[A, B]) pipe.Step[A, B] {
	pipe.CheckStep("solo.Flow1", 1, f1)
	return f1
}

// Pipe1 applies f1 to value.
func Pipe1[A, B any](value A, f1 pipe.Step[A, B]) (B, error) {
	return Flow1(f1)(value)
}

// Flow2 composes 2 steps whose types chain A -> B -> C.
func Flow2[A, B, C any](f1 pipe.Step[A, B], f2 pipe.Step[B, C]) pipe.Step[A, C] {
	pipe.CheckStep("solo.Flow2", 1, f1)
	pipe.CheckStep("solo.Flow2", 2, f2)
	return Then(f1, f2)
}

// Pipe2 applies 2 chained steps to value, left to right.
func Pipe2[A, B, C any](value A, f1 pipe.Step[A, B], f2 pipe.Step[B, C]) (C, error) {
	return Flow2(f1, f2)(value)
}

// Flow3 composes 3 steps whose types chain A -> B -> C -> D.
func Flow3[A, B, C, D any](f1 pipe.Step[A, B], f2 pipe.Step[B, C], f3 pipe.Step[C, D]) pipe.Step[A, D] {
	pipe.CheckStep("solo.Flow3", 1, f1)
	pipe.CheckStep("solo.Flow3", 2, f2)
	pipe.CheckStep("solo.Flow3", 3, f3)
	return Then(Then(f1, f2), f3)
}

// Pipe3 applies 3 chained steps to value, left to right.
func Pipe3[A, B, C, D any](value A, f1 pipe.Step[A, B], f2 pipe.Step[B, C], f3 pipe.Step[C, D]) (D, error) {
	return Flow3(f1, f2, f3)(value)
}

// Flow4 composes 4 steps whose types chain A -> B -> C -> D -> E.
func Flow4[A, B, C, D, E any](f1 pipe.Step[A, B], f2 pipe.Step[B, C], f3 pipe.Step[C, D], f4 pipe.Step[D, E]) pipe.Step[A, E] {
	pipe.CheckStep("solo.Flow4", 1, f1)
	pipe.CheckStep("solo.Flow4", 2, f2)
	pipe.CheckStep("solo.Flow4", 3, f3)
	pipe.CheckStep("solo.Flow4", 4, f4)
	return Then(Then(Then(f1, f2), f3), f4)
}

// Pipe4 applies 4 chained steps to value, left to right.
func Pipe4[A, B, C, D, E any](value A, f1 pipe.Step[A, B], f2 pipe.Step[B, C], f3 pipe.Step[C, D], f4 pipe.Step[D, E]) (E, error) {
	return Flow4(f1, f2, f3, f4)(value)
}

// Flow5 composes 5 steps whose types chain A -> B -> C -> D -> E -> F.
func Flow5[A, B, C, D, E, F any](f1 pipe.Step[A, B], f2 pipe.Step[B, C], f3 pipe.Step[C, D], f4 pipe.Step[D, E], f5 pipe.Step[E, F]) pipe.Step[A, F] {
	pipe.CheckStep("solo.Flow5", 1, f1)
	pipe.CheckStep("solo.Flow5", 2, f2)
	pipe.CheckStep("solo.Flow5", 3, f3)
	pipe.CheckStep("solo.Flow5", 4, f4)
	pipe.CheckStep("solo.Flow5", 5, f5)
	return Then(Then(Then(Then(f1, f2), f3), f4), f5)
}

// Pipe5 applies 5 chained steps to value, left to right.
func Pipe5[A, B, C, D, E, F any](value A, f1 pipe.Step[A, B], f2 pipe.Step[B, C], f3 pipe.Step[C, D], f4 pipe.Step[D, E], f5 pipe.Step[E, F]) (F, error) {
	return Flow5(f1, f2, f3, f4, f5)(value)
}

// Flow6 composes 6 steps whose types chain A -> B -> C -> D -> E -> F -> G.
func Flow6[A, B, C, D, E, F, G any](f1 pipe.Step[A, B], f2 pipe.Step[B, C], f3 pipe.Step[C, D], f4 pipe.Step[D, E], f5 pipe.Step[E, F], f6 pipe.Step[F, G]) pipe.Step[A, G] {
	pipe.CheckStep("solo.Flow6", 1, f1)
	pipe.CheckStep("solo.Flow6", 2, f2)
	pipe.CheckStep("solo.Flow6", 3, f3)
	pipe.CheckStep("solo.Flow6", 4, f4)
	pipe.CheckStep("solo.Flow6", 5, f5)
	pipe.CheckStep("solo.Flow6", 6, f6)
	return Then(Then(Then(Then(Then(f1, f2), f3), f4), f5), f6)
}

// Pipe6 applies 6 chained steps to value, left to right.
func Pipe6[A, B, C, D, E, F, G any](value A, f1 pipe.Step[A, B], f2 pipe.Step[B, C], f3 pipe.Step[C, D], f4 pipe.Step[D, E], f5 pipe.Step[E, F], f6 pipe.Step[F, G]) (G, error) {
	return Flow6(f1, f2, f3, f4, f5, f6)(value)
}
