// Package chain builds type-checked chains of any length one step at a time.
// Go functions cannot take a variadic list of steps whose types differ, so
// each call to Then or Append checks the new step against the current output
// type and returns a chain of the new type.
//
// Pipes:
//
//	parts, err := chain.Then(chain.Then(chain.FromValue(123), toString), split).Get()
//
// Flows:
//
//	f := chain.Append(chain.Append(chain.Compose[int](), toString), split)
//	parts, err := f.Run(123)
//
// Async flows are built the same way with ComposeAsync, AppendAsync and
// AppendSync.
package chain
