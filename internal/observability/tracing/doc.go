// Package tracing provides OpenTelemetry tracing integration.
//
// HTTP requests get a server span from Middleware; the summarize use case
// opens child spans with StartSpan. Spans go to whatever TracerProvider is
// installed globally, so a process without an exporter pays only for the
// no-op tracer.
//
// Example usage:
//
//	func process(ctx context.Context) error {
//	    ctx, span := tracing.StartSpan(ctx, "summarize.Summarize")
//	    defer span.End()
//	    err := work(ctx)
//	    tracing.RecordError(span, err)
//	    return err
//	}
package tracing
