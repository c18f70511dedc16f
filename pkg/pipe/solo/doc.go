// Package solo contains the synchronous composers: Pipe applies a value
// through steps right away, Flow builds a reusable function that does so.
//
// Highlights:
// - Pipe/Flow: any number of steps sharing one type T
// - Pipe1..Pipe6/Flow1..Flow6: chains whose step types differ, checked at compile time
// - Then: compose two steps
// - Try/Map/Tee/Finally: single-step helpers over pipe.Result
//
// Steps run in order, each once, on the calling goroutine. The first error
// ends the chain and is returned unchanged.
package solo
