package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aokblast/sicxeasm/api"
	"github.com/aokblast/sicxeasm/config"
	"github.com/aokblast/sicxeasm/listing"
	"github.com/aokblast/sicxeasm/object"
	"github.com/aokblast/sicxeasm/parser"
	"github.com/aokblast/sicxeasm/service"
	"github.com/aokblast/sicxeasm/tools"
	"github.com/aokblast/sicxeasm/tui"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		tuiMode     = flag.Bool("tui", false, "Browse the assembled listing in a text user interface")
		apiServer   = flag.Bool("api-server", false, "Start the HTTP API server")
		apiPort     = flag.Int("port", 0, "API server port (used with -api-server, overrides config)")
		configPath  = flag.String("config", "", "Path to a config.toml (default: platform config directory)")
		lintMode    = flag.Bool("lint", false, "Run the style linter and exit")
		formatMode  = flag.Bool("format", false, "Print the canonically formatted source and exit")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("sicxeasm %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *apiPort != 0 {
		cfg.API.Port = *apiPort
	}

	if *apiServer {
		runAPIServer(cfg)
		return
	}

	// Check the argument count before touching argv.
	if flag.NArg() == 0 {
		fmt.Println("File name not specify")
		os.Exit(0)
	}

	sourcePath := flag.Arg(0)

	if *formatMode {
		runFormat(sourcePath)
		return
	}

	source, err := os.ReadFile(sourcePath) // #nosec G304 -- user-supplied CLI argument
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", sourcePath, err)
		os.Exit(1)
	}

	result, err := service.Assemble(source, sourcePath, cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *lintMode {
		runLint(result)
		return
	}

	if *tuiMode {
		browser := tui.NewBrowser(result)
		if err := browser.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printResult(result, cfg)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func runAPIServer(cfg *config.Config) {
	server := api.NewServer(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down API server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
		os.Exit(1)
	}
}

func runFormat(path string) {
	lines, err := parser.ReadLines(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", path, err)
		os.Exit(1)
	}
	for _, line := range tools.Format(lines) {
		fmt.Println(line)
	}
}

func runLint(result *service.Result) {
	issues := tools.Lint(result.Program)
	for _, issue := range issues {
		fmt.Println(issue.String())
	}
	if len(issues) == 0 {
		fmt.Println("no issues found")
	}
}

func printResult(result *service.Result, cfg *config.Config) {
	for _, line := range listing.FormatRows(result.Listing, listingOptions(cfg)) {
		fmt.Println(line)
	}

	fmt.Println(result.Header.String())
	for _, t := range result.Texts {
		fmt.Println(t.String())
	}
	fmt.Println(result.End.String())
}

func listingOptions(cfg *config.Config) listing.Options {
	if cfg == nil {
		return listing.DefaultOptions()
	}
	return listing.Options{
		AddressWidth: cfg.Listing.AddressWidth,
		ShowSource:   cfg.Listing.ShowSourceColumn,
	}
}

func printHelp() {
	fmt.Println(`sicxeasm - a SIC/XE two-pass assembler

Usage:
  sicxeasm [flags] <source-file>

Flags:
  -version         Show version information
  -help             Show this help message
  -tui              Browse the assembled listing in a text user interface
  -api-server       Start the HTTP API server
  -port <n>         API server port (used with -api-server)
  -config <path>    Path to a config.toml
  -lint             Run the style linter and exit
  -format           Print the canonically formatted source and exit

Budget record length: up to 0x` + fmt.Sprintf("%X", object.DefaultBudget) + ` bytes per Text record.`)
}
