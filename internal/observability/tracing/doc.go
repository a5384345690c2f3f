// Package tracing provides OpenTelemetry tracing integration.
//
// cmd/api installs an SDK tracer provider at startup; HTTP requests get a server
// span from Middleware and the article use cases open child spans through Tracer.
//
//	tp := tracing.NewProvider("article-desk", version)
//	tracing.Install(tp)
//	defer func() { _ = tp.Shutdown(context.Background()) }()
//
//	ctx, span := tracing.Tracer().Start(ctx, "article.Create")
//	defer span.End()
package tracing
