package app

import (
	"context"
	"log"
	"os"

	"textstat/internal/domain/config"
	"textstat/internal/networker"
	"textstat/internal/textstats"

	charmlog "github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"go.uber.org/zap"
)

func InitApp(run *config.Run, fetchSettings config.Fetch, analysisSettings config.Analysis) *StatApp {
	logger := initLogger()
	tp := initTracing(logger)

	console := charmlog.New(os.Stderr)
	notify := func(message string) {
		console.Warn(message)
	}

	fetcher := networker.NewNetworker(logger, fetchSettings, notify)
	analyzer := textstats.NewStatsRepo(logger, analysisSettings)

	return NewStatApp(logger, run, fetcher, analyzer, os.Stdout, tp)
}

func initLogger() *zap.SugaredLogger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error initializing zap logger: %v", err)
		return nil
	}

	return zapLogger.Sugar()
}

// initTracing sets up OTLP trace export when OTLP_ENDPOINT is configured.
// Without it spans stay no-ops and the fetch transport adds no overhead.
func initTracing(logger *zap.SugaredLogger) *trace.TracerProvider {
	endpoint := os.Getenv("OTLP_ENDPOINT")
	if endpoint == "" {
		return nil
	}

	exp, err := otlptracehttp.New(context.Background(), otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		logger.Fatalf("Error initializing trace exporter: %v", err)
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(semconv.ServiceNameKey.String("textstat")),
	)
	if err != nil {
		logger.Fatal("Error initializing otel resource:", err)
	}

	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)

	otel.SetTracerProvider(tracerProvider)

	return tracerProvider
}
