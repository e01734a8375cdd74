package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/nrtkbb/comicshelf/cmd/id"
	"github.com/nrtkbb/comicshelf/cmd/pages"
	"github.com/nrtkbb/comicshelf/cmd/scan"
	"github.com/nrtkbb/comicshelf/cmd/serve"
	"github.com/nrtkbb/comicshelf/cmd/stat"
	"github.com/nrtkbb/comicshelf/cmd/testdata"
	"github.com/nrtkbb/comicshelf/cmd/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var traceEnabled = flag.Bool("trace", false, "export OpenTelemetry spans to stderr")

// initTracer initializes the OpenTelemetry tracer provider
func initTracer() (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(os.Stderr),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("comicshelf"),
		semconv.ServiceVersion(version.Version),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tp)

	return tp, nil
}

func main() {
	// Register subcommands
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&serve.Command{}, "")
	subcommands.Register(&scan.Command{}, "library")
	subcommands.Register(&pages.Command{}, "library")
	subcommands.Register(&id.Command{}, "library")
	subcommands.Register(&stat.Command{}, "library")
	subcommands.Register(&testdata.Command{}, "")
	subcommands.Register(&version.Command{}, "")

	// Set the default subcommand to help if no subcommand is specified
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(int(run()))
}

func run() subcommands.ExitStatus {
	if *traceEnabled {
		tp, err := initTracer()
		if err != nil {
			log.Printf("Failed to initialize tracer: %v", err)
			return subcommands.ExitFailure
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down tracer provider: %v", err)
			}
		}()
	}

	// Execute the specified subcommand
	return subcommands.Execute(context.Background())
}
