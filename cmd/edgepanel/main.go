package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/edgepanel/internal/app"
	"github.com/sadopc/edgepanel/internal/config"
	"github.com/sadopc/edgepanel/internal/logging"
	"github.com/sadopc/edgepanel/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "call":
			os.Exit(callCmd(os.Args[2:], os.Stdout, os.Stderr))
		case "serve":
			os.Exit(serveCmd(os.Args[2:], os.Stderr))
		case "themes":
			themesCmd(os.Stdout)
			return
		case "completion":
			os.Exit(completionCmd(os.Args[2:], os.Stdout, os.Stderr))
		case "version":
			printVersion(os.Stdout)
			return
		case "help":
			printHelp(os.Stderr)
			return
		}
	}
	tuiCmd()
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "edgepanel %s (%s) built %s\n", version.Version, version.Commit, version.Date)
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `edgepanel - terminal control panel for an edge inference backend

Usage:
  edgepanel [flags]                    Launch TUI (interactive mode)
  edgepanel <command> [args] [flags]   Run a subcommand

Commands:
  call        Send start/stop/text commands headlessly
  serve       Run a demo backend answering /start, /stop and /text
  themes      List built-in color themes
  completion  Generate shell completion scripts (bash, zsh, fish)
  version     Print version information
  help        Show this help message

TUI Flags:
  --base-url <url>   Backend base URL (overrides config and %s)
  --config <path>    Config file (default ~/.config/edgepanel/config.yaml)
  --theme <name>     Color theme
  --version          Print version and exit

Run 'edgepanel <command> --help' for more information about a command.
`, config.BaseURLEnv)
}

// loadConfig reads path when given, the default location otherwise.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load(), nil
	}
	return config.LoadFile(path)
}

// parseInterleaved parses flags that may appear after positional arguments
// and returns the positionals in order.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	baseURLFlag := flag.String("base-url", "", "Backend base URL")
	configFlag := flag.String("config", "", "Path to a config file")
	themeFlag := flag.String("theme", "", "Color theme")
	flag.Usage = func() { printHelp(os.Stderr) }
	flag.Parse()

	if *versionFlag {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if v := strings.TrimSpace(*baseURLFlag); v != "" {
		cfg.BaseURL = v
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}

	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: tls: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting", "version", version.Version, "base_url", cfg.BaseURL)

	model := app.New(cfg, app.WithLogger(logger), app.WithTLSConfig(tlsCfg))
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	if err != nil {
		logger.Error("program exited", "err", err)
	}
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
