package helpers

import (
	"context"

	"code.cloudfoundry.org/lager/v3"
	"go.opentelemetry.io/otel/trace"
)

// AddTraceID copies the W3C trace and span ids of the active span into data.
// Requests without a valid span context are left untouched.
func AddTraceID(ctx context.Context, data lager.Data) lager.Data {
	if data == nil {
		data = lager.Data{}
	}
	spanContext := trace.SpanContextFromContext(ctx)
	if !spanContext.IsValid() {
		return data
	}
	data["w3c_trace-id"] = spanContext.TraceID().String()
	data["w3c_span-id"] = spanContext.SpanID().String()
	return data
}
