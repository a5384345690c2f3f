package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans created by this service.
const TracerName = "article-desk"

// Tracer returns the tracer of the currently installed provider.
// It is resolved on every call so tests can swap providers.
func Tracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(TracerName)
}

// NewProvider builds an SDK tracer provider tagged with the service name and version.
// Exporters are passed as options (sdktrace.WithBatcher / WithSyncer).
func NewProvider(serviceName, version string, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	res := sdkresource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)
	base := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	}
	return sdktrace.NewTracerProvider(append(base, opts...)...)
}

// Install makes tp the global provider and enables W3C trace context propagation.
func Install(tp trace.TracerProvider) {
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}
