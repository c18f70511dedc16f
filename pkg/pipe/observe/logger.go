package observe

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/pipeflow/pkg/pipe"
	"github.com/ib-77/pipeflow/pkg/pipe/async"
)

const (
	FieldStep     = "step"
	FieldRunID    = "run_id"
	FieldDuration = "duration"
)

// NewLogger builds a zerolog logger writing to w (stdout when nil). An
// unknown level falls back to info.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	cfg.ApplyDefaults()
	if w == nil {
		w = os.Stdout
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if cfg.Format == FormatConsole {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    cfg.NoColor,
			TimeFormat: time.RFC3339,
		})
	} else {
		zl = zerolog.New(w)
	}

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	return zl.Level(level)
}

// Log wraps step so that every call writes a debug event when it starts and
// one when it returns. A failing call is logged at warn level with its error.
func Log[In, Out any](logger zerolog.Logger, name string, step pipe.Step[In, Out]) pipe.Step[In, Out] {
	pipe.CheckStep("observe.Log", 1, step)
	return func(in In) (Out, error) {
		l := logger.With().Str(FieldStep, name).Stringer(FieldRunID, uuid.New()).Logger()
		start := time.Now()

		l.Debug().Msg("step started")
		out, err := step(in)
		finished(l, err, time.Since(start))

		return out, err
	}
}

// LogAsync is Log for asynchronous steps. The finish event is written when
// the step's deferred settles.
func LogAsync[In, Out any](logger zerolog.Logger, name string, step async.Step[In, Out]) async.Step[In, Out] {
	pipe.CheckStep("observe.LogAsync", 1, step)
	return func(ctx context.Context, in In) async.Deferred[Out] {
		l := logger.With().Str(FieldStep, name).Stringer(FieldRunID, uuid.New()).Logger()
		start := time.Now()

		l.Debug().Msg("step started")
		d := step(ctx, in)
		if d == nil {
			finished(l, async.ErrNoResult, time.Since(start))
			return nil
		}

		out := make(chan pipe.Result[Out], 1)
		go func() {
			defer close(out)
			r, ok := <-d
			if !ok {
				finished(l, async.ErrNoResult, time.Since(start))
				return
			}
			_, err := r.Get()
			finished(l, err, time.Since(start))
			out <- r
		}()
		return out
	}
}

func finished(l zerolog.Logger, err error, took time.Duration) {
	if err != nil {
		l.Warn().Err(err).Dur(FieldDuration, took).Msg("step failed")
		return
	}
	l.Debug().Dur(FieldDuration, took).Msg("step finished")
}
