// Package observe decorates chain steps with structured logs (zerolog) and
// OpenTelemetry spans. The composers never log or trace by themselves; wrap
// the steps you want to watch:
//
//	logger := observe.NewLogger(observe.Config{Level: "debug"}, os.Stderr)
//	parse := observe.Log(logger, "parse", pipe.Step[string, int](strconv.Atoi))
//
// Decorated steps return exactly what the wrapped step returned. Errors are
// never wrapped, so errors.Is and == keep working on the caller's side.
package observe
