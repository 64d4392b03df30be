package validation

import (
	"context"
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"levelzero/pkg/ze"
)

type phase string

const (
	phasePrologue phase = "prologue"
	phaseDriver   phase = "driver"
	phaseEpilogue phase = "epilogue"
)

// dispatch runs one status-returning entry point through the registered
// checkers. F is the family capability interface.
//
// Prologues run in registration order and the first non-success result is
// returned without calling the driver. Otherwise the driver is called and
// every epilogue runs with its result. A driver failure is returned as is;
// a successful call reports the first failing epilogue, if any.
func dispatch[F any](
	l *Layer,
	name string,
	pick func(Checker) F,
	prologue func(F) ze.Result,
	call func() ze.Result,
	epilogue func(F, ze.Result) ze.Result,
) ze.Result {
	return run(l, name, pick, prologue, call, statusOf, epilogue, statusOf)
}

// dispatchValue is dispatch for entry points returning a value instead of a
// status. A rejection by any checker yields failed.
func dispatchValue[F, T any](
	l *Layer,
	name string,
	pick func(Checker) F,
	prologue func(F) ze.Result,
	call func() T,
	epilogue func(F, T) ze.Result,
	failed T,
) T {
	return run(l, name, pick, prologue, call,
		func(T) ze.Result { return ze.Success },
		epilogue,
		func(ze.Result) T { return failed },
	)
}

func statusOf(r ze.Result) ze.Result { return r }

func run[F, T any](
	l *Layer,
	name string,
	pick func(Checker) F,
	prologue func(F) ze.Result,
	call func() T,
	status func(T) ze.Result,
	epilogue func(F, T) ze.Result,
	reject func(ze.Result) T,
) T {
	ctx, span := l.tracer.Start(context.Background(), name)
	defer span.End()

	checkers := l.registry.snapshot()
	for _, c := range checkers {
		f := pick(c)
		if absent(f) {
			continue
		}
		if r := prologue(f); r != ze.Success {
			l.checkerFailed(ctx, span, name, phasePrologue, c.Name(), r)
			l.finish(span, name, phasePrologue, r)
			return reject(r)
		}
	}

	out := call()
	driverResult := status(out)

	final := ze.Success
	for _, c := range checkers {
		f := pick(c)
		if absent(f) {
			continue
		}
		if r := epilogue(f, out); r != ze.Success {
			l.checkerFailed(ctx, span, name, phaseEpilogue, c.Name(), r)
			if final == ze.Success {
				final = r
			}
		}
	}

	if driverResult != ze.Success {
		l.logger.DebugContext(ctx, "driver returned failure",
			"entry_point", name, "result", driverResult.String())
		l.finish(span, name, phaseDriver, driverResult)
		return out
	}
	if final != ze.Success {
		l.finish(span, name, phaseEpilogue, final)
		return reject(final)
	}
	l.finish(span, name, phaseDriver, ze.Success)
	return out
}

// absent reports whether a family accessor returned nil, including a nil
// pointer wrapped in the family interface.
func absent[F any](f F) bool {
	if any(f) == nil {
		return true
	}
	v := reflect.ValueOf(f)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (l *Layer) checkerFailed(ctx context.Context, span trace.Span, name string, p phase, checker string, r ze.Result) {
	l.metrics.IncrementCheckerFailure(checker, string(p))
	span.AddEvent("checker failure", trace.WithAttributes(
		attribute.String("validation.checker", checker),
		attribute.String("validation.phase", string(p)),
		attribute.String("ze.result", r.String()),
	))
	l.logger.DebugContext(ctx, "checker returned failure",
		"entry_point", name,
		"phase", string(p),
		"checker", checker,
		"result", r.String(),
	)
}

func (l *Layer) finish(span trace.Span, name string, p phase, r ze.Result) {
	l.metrics.IncrementCall(name, string(p), r.String())
	span.SetAttributes(attribute.String("ze.result", r.String()))
	if r != ze.Success {
		span.SetStatus(codes.Error, r.String())
	}
}

// unsupported reports a call to an entry point the next layer down does not
// provide.
func (l *Layer) unsupported(name string) ze.Result {
	l.logger.Debug("entry point not provided by driver", "entry_point", name)
	l.metrics.IncrementCall(name, string(phaseDriver), ze.ErrorUnsupportedFeature.String())
	return ze.ErrorUnsupportedFeature
}
