package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jmartel/bibliofind"
	"github.com/jmartel/bibliofind/fs"
	"github.com/jmartel/bibliofind/gemini"
	biblhttp "github.com/jmartel/bibliofind/http"
	biblslog "github.com/jmartel/bibliofind/slog"
	"github.com/jmartel/bibliofind/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the query log, nil when disabled.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// CLI defines the command-line flags.
type CLI struct {
	Addr       string        `default:":5000" help:"HTTP listen address."`
	CatalogURL string        `name:"catalog-url" env:"CATALOG_URL" help:"Remote catalog sheet URL (CSV). Optional."`
	SourcesDir string        `name:"sources-dir" default:"sources" help:"Directory searched for fallback .csv catalogs."`
	TTL        time.Duration `default:"5m" help:"Catalog cache time-to-live."`
	DB         string        `env:"BIBLIOFIND_DB" help:"Query log database path. Empty disables the query log."`
}

// Run executes the program with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// .env is optional and never overrides the process environment.
	_ = godotenv.Load()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bibliofind"),
		kong.Description("Web front end for the catalog search assistant."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	// The remote sheet is tried first when configured; the local sources
	// directory is always the fallback.
	var sources []bibliofind.CatalogSource
	if cli.CatalogURL != "" {
		sources = append(sources, biblslog.NewLoggingCatalogSource(biblhttp.NewCatalogSource(cli.CatalogURL), logger))
	}
	sources = append(sources, biblslog.NewLoggingCatalogSource(fs.NewCatalogSource(cli.SourcesDir), logger))

	catalog := bibliofind.NewCatalogCache(
		bibliofind.NewMultiSource(sources...),
		bibliofind.WithTTL(cli.TTL),
	)

	completer := biblslog.NewLoggingCompleter(gemini.NewCompleter(client), logger)

	server := &biblhttp.Server{
		Search:  &bibliofind.Search{Catalog: catalog, Completer: completer},
		Catalog: catalog,
		Limiter: rate.NewLimiter(rate.Limit(2), 4),
		Logger:  logger,
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open query log at %q: %w", cli.DB, err)
		}
		defer m.Close()
		server.Queries = sqlite.NewQueryLogService(m.DB)
	}

	httpServer := &http.Server{
		Addr:    cli.Addr,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", cli.Addr)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
