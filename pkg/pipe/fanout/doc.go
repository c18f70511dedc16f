// Package fanout runs one composed asynchronous function over a stream of
// inputs with a fixed number of lines. Each input gets a fresh run of the
// chain; lines share nothing but the input and output channels, so results
// may arrive in any order.
package fanout
