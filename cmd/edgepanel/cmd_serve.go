package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sadopc/edgepanel/internal/logging"
	"github.com/sadopc/edgepanel/internal/mock"
	"github.com/sadopc/edgepanel/internal/ui/theme"
)

func serveCmd(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	portFlag := fs.Int("port", 3000, "Port to listen on")
	latencyFlag := fs.Duration("latency", 0, "Artificial response latency (e.g., 200ms, 1s)")
	errorRateFlag := fs.Float64("error-rate", 0, "Random error rate (0.0-1.0)")
	corsOriginFlag := fs.String("cors-origin", "*", "Access-Control-Allow-Origin header value")
	logLevelFlag := fs.String("log-level", "info", "Log level: debug, info, warn, error")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: edgepanel serve [flags]\n\n")
		fmt.Fprintf(stderr, "Run a demo backend for the panel. It answers GET /start, GET /stop,\n")
		fmt.Fprintf(stderr, "POST /text and GET /status with JSON. /start returns a sample frame\n")
		fmt.Fprintf(stderr, "as a data URL that can be saved as a snapshot.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  edgepanel serve\n")
		fmt.Fprintf(stderr, "  edgepanel serve --port 8080 --latency 300ms\n")
		fmt.Fprintf(stderr, "  edgepanel serve --error-rate 0.2\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *errorRateFlag < 0 || *errorRateFlag > 1 {
		fmt.Fprintf(stderr, "Error: error-rate must be between 0.0 and 1.0\n")
		return 2
	}
	if *portFlag < 0 || *portFlag > 65535 {
		fmt.Fprintf(stderr, "Error: port must be between 0 and 65535\n")
		return 2
	}

	opts := []mock.Option{
		mock.WithPort(*portFlag),
		mock.WithLogger(logging.NewWriter(stderr, *logLevelFlag)),
	}
	if *latencyFlag > 0 {
		opts = append(opts, mock.WithLatency(*latencyFlag))
		fmt.Fprintf(stderr, "Artificial latency: %s\n", latencyFlag.String())
	}
	if *errorRateFlag > 0 {
		opts = append(opts, mock.WithErrorRate(*errorRateFlag))
		fmt.Fprintf(stderr, "Error rate: %.0f%%\n", *errorRateFlag*100)
	}
	if *corsOriginFlag != "*" {
		opts = append(opts, mock.WithCORSOrigin(*corsOriginFlag))
	}

	srv := mock.New(opts...)
	for _, r := range srv.Routes() {
		fmt.Fprintf(stderr, "  %s\n", r)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func themesCmd(w io.Writer) {
	for _, name := range theme.Names() {
		fmt.Fprintln(w, name)
	}
}
