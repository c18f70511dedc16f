package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/pipeflow/pkg/pipe"
	"github.com/ib-77/pipeflow/pkg/pipe/async"
)

const (
	instrumentationName = "github.com/ib-77/pipeflow/pkg/pipe/observe"
	AttrStep            = "pipe.step"
)

func tracerOrDefault(tracer trace.Tracer) trace.Tracer {
	if tracer == nil {
		return otel.Tracer(instrumentationName)
	}
	return tracer
}

// Span wraps step so that every call runs inside a span named name. Since a
// synchronous step gets no context, spans are children of parent.
// A nil tracer uses the global provider.
func Span[In, Out any](parent context.Context, tracer trace.Tracer, name string, step pipe.Step[In, Out]) pipe.Step[In, Out] {
	pipe.CheckStep("observe.Span", 1, step)
	tracer = tracerOrDefault(tracer)
	return func(in In) (Out, error) {
		_, span := tracer.Start(parent, name, trace.WithAttributes(attribute.String(AttrStep, name)))
		defer span.End()

		out, err := step(in)
		recordOutcome(span, err)
		return out, err
	}
}

// SpanAsync wraps an asynchronous step. The span starts from the call's
// context, is passed on to the step, and ends when the step's deferred
// settles.
func SpanAsync[In, Out any](tracer trace.Tracer, name string, step async.Step[In, Out]) async.Step[In, Out] {
	pipe.CheckStep("observe.SpanAsync", 1, step)
	tracer = tracerOrDefault(tracer)
	return func(ctx context.Context, in In) async.Deferred[Out] {
		spanCtx, span := tracer.Start(ctx, name, trace.WithAttributes(attribute.String(AttrStep, name)))

		d := step(spanCtx, in)
		if d == nil {
			recordOutcome(span, async.ErrNoResult)
			span.End()
			return nil
		}

		out := make(chan pipe.Result[Out], 1)
		go func() {
			defer close(out)

			r, ok := <-d
			if !ok {
				recordOutcome(span, async.ErrNoResult)
				span.End()
				return
			}
			_, err := r.Get()
			recordOutcome(span, err)
			span.End()
			out <- r
		}()
		return out
	}
}

func recordOutcome(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
