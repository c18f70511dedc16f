// Package async contains the asynchronous composers. A step returns a
// Deferred, a channel that delivers one pipe.Result, so it may finish its
// work later or on another goroutine. PipeAsync and FlowAsync settle each
// step's deferred before the next step is invoked, which keeps the left to
// right order of the synchronous composers in package solo.
//
// Synchronous steps join a chain through Sync (run in place) or Spawn (run
// on a goroutine of their own).
//
// No step is interrupted when ctx ends. The chain stops waiting, settles as
// cancelled and starts nothing further.
package async
