package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sadopc/edgepanel/internal/core/dispatch"
	"github.com/sadopc/edgepanel/internal/logging"
	"github.com/sadopc/edgepanel/internal/runner"
)

func callCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("call", flag.ContinueOnError)
	fs.SetOutput(stderr)
	baseURLFlag := fs.String("base-url", "", "Backend base URL (default from config)")
	textFlag := fs.String("text", "", "Text to send with the text command")
	outputFlag := fs.String("output", "text", "Output format: text, json, junit")
	verboseFlag := fs.Bool("verbose", false, "Show response data")
	timeoutFlag := fs.Duration("timeout", 0, "Request timeout (default from config)")
	configFlag := fs.String("config", "", "Path to a config file")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: edgepanel call <start|stop|text>... [flags]\n\n")
		fmt.Fprintf(stderr, "Send one or more commands to the backend without the TUI.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  edgepanel call start\n")
		fmt.Fprintf(stderr, "  edgepanel call text --text \"hello edge\"\n")
		fmt.Fprintf(stderr, "  edgepanel call start text stop --text hi --output json\n")
		fmt.Fprintf(stderr, "  edgepanel call start --base-url http://10.0.0.5:3000 --output junit > results.xml\n")
		fmt.Fprintf(stderr, "\nExit codes:\n")
		fmt.Fprintf(stderr, "  0  All commands succeeded\n")
		fmt.Fprintf(stderr, "  2  A command failed or the arguments were invalid\n")
	}

	names, err := parseInterleaved(fs, args)
	if err != nil {
		return 2
	}
	if len(names) == 0 {
		fmt.Fprintf(stderr, "Error: at least one command is required\n\n")
		fs.Usage()
		return 2
	}

	actions := make([]dispatch.Action, 0, len(names))
	for _, name := range names {
		action, err := dispatch.ParseAction(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		actions = append(actions, action)
	}

	switch *outputFlag {
	case "text", "json", "junit":
	default:
		fmt.Fprintf(stderr, "Error: invalid output format %q (must be text, json, or junit)\n", *outputFlag)
		return 2
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if v := strings.TrimSpace(*baseURLFlag); v != "" {
		cfg.BaseURL = v
	}
	timeout := cfg.RequestTimeout
	if *timeoutFlag > 0 {
		timeout = *timeoutFlag
	}

	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		fmt.Fprintf(stderr, "Error: tls: %v\n", err)
		return 2
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer closeLog()

	r, err := runner.New(runner.Config{
		BaseURL:      cfg.BaseURL,
		Text:         *textFlag,
		Actions:      actions,
		OutputFormat: *outputFlag,
		Verbose:      *verboseFlag,
		Timeout:      timeout,
		LogCapacity:  cfg.LogCapacity,
		TLS:          tlsCfg,
		Logger:       logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	report := r.Run(ctx)

	switch *outputFlag {
	case "json":
		if err := runner.PrintJSON(stdout, report); err != nil {
			fmt.Fprintf(stderr, "Error writing JSON: %v\n", err)
			return 2
		}
	case "junit":
		if err := runner.PrintJUnit(stdout, report.Results); err != nil {
			fmt.Fprintf(stderr, "Error writing JUnit XML: %v\n", err)
			return 2
		}
	default:
		runner.PrintText(stdout, report, *verboseFlag)
	}

	if len(report.Results) < len(actions) {
		return 2
	}
	return runner.ExitCode(report.Results)
}
