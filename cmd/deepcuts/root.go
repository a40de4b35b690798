package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/deepcuts/internal/adapters/gemini"
	"github.com/ewilliams-labs/deepcuts/internal/adapters/ollama"
	"github.com/ewilliams-labs/deepcuts/internal/adapters/openai"
	"github.com/ewilliams-labs/deepcuts/internal/adapters/spotify"
	"github.com/ewilliams-labs/deepcuts/internal/adapters/sqlite"
	"github.com/ewilliams-labs/deepcuts/internal/cache"
	"github.com/ewilliams-labs/deepcuts/internal/config"
	"github.com/ewilliams-labs/deepcuts/internal/core/ports"
	"github.com/ewilliams-labs/deepcuts/internal/core/services"
	"github.com/ewilliams-labs/deepcuts/internal/logging"
	"github.com/ewilliams-labs/deepcuts/internal/output"
	"github.com/ewilliams-labs/deepcuts/internal/worker"
)

const version = "0.3.0"

type globalFlags struct {
	configPath string
	debug      bool
	json       bool
	quiet      bool
	noColor    bool
}

// app holds what every subcommand needs once flags are parsed.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	out    *output.Output

	// closers release adapters opened by newService; commands defer close.
	closers []func() error
}

func newRootCmd() *cobra.Command {
	var flags globalFlags
	a := &app{}

	root := &cobra.Command{
		Use:           "deepcuts",
		Short:         "Suggest obscure songs from a listening history",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", os.Getenv("DEEPCUTS_CONFIG"), "path to a YAML config file")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.BoolVar(&flags.json, "json", false, "emit JSON")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress informational output")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newServeCmd(a),
		newSuggestCmd(a),
		newResolveCmd(a),
		newHistoryCmd(a),
	)
	return root
}

func (a *app) init(flags globalFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logging.Setup(os.Stderr, logging.ResolveLevel(cfg.Log.Level, flags.debug))

	a.out = output.New(output.Options{
		JSON:    flags.json,
		Quiet:   flags.quiet,
		NoColor: flags.noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb",
	})
	return nil
}

func (a *app) close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

// serviceDeps selects which optional adapters a command needs.
type serviceDeps struct {
	storage   bool
	generator bool
	verify    bool
}

// newService wires the adapters into an Orchestrator. Adapters a command
// does not need are left nil; the catalog is always wired since its
// credentials are only checked on first use.
func (a *app) newService(ctx context.Context, deps serviceDeps) (*services.Orchestrator, error) {
	catalogClient := spotify.NewClient(spotify.Config{
		ClientID:     a.cfg.Spotify.ClientID,
		ClientSecret: a.cfg.Spotify.ClientSecret,
		TokenURL:     a.cfg.Spotify.TokenURL,
		BaseURL:      a.cfg.Spotify.BaseURL,
		PageLimit:    a.cfg.Spotify.PageLimit,
		MaxAttempts:  a.cfg.Spotify.MaxAttempts,
		RetryBackoff: a.cfg.Spotify.RetryBackoff,
		Logger:       a.logger,
	})
	catalog := cache.NewPlaylistCache(catalogClient, a.cfg.Cache.Size, a.cfg.Cache.TTL)

	opts := []services.Option{
		services.WithLogger(a.logger),
		services.WithProvider(a.cfg.Generator.Provider),
	}

	var repo ports.HistoryRepository
	if deps.storage {
		db, err := sqlite.NewAdapter(a.cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open history store: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		repo = db
	}

	var gen ports.Generator
	if deps.generator {
		g, err := a.newGenerator(ctx)
		if err != nil {
			return nil, err
		}
		gen = g
	}

	if deps.verify {
		pool := worker.NewPool(catalogClient, a.cfg.Verify.Workers, 100, a.logger)
		pool.Start()
		a.closers = append(a.closers, func() error { pool.Stop(); return nil })
		opts = append(opts, services.WithVerifier(pool))
	}

	return services.NewOrchestrator(catalog, gen, repo, opts...), nil
}

func (a *app) newGenerator(ctx context.Context) (ports.Generator, error) {
	g := a.cfg.Generator
	switch g.Provider {
	case config.ProviderOllama:
		return ollama.NewClient(g.Ollama.Host, g.Ollama.Model, g.Timeout), nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:     g.Gemini.APIKey,
			Model:      g.Gemini.Model,
			HTTPClient: &http.Client{Timeout: g.Timeout},
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		if g.OpenAI.APIKey == "" {
			return nil, usageError{msg: "OPENAI_API_KEY is not set (or choose another provider with GENERATOR_PROVIDER)"}
		}
		return openai.NewClient(g.OpenAI.APIKey,
			openai.WithEndpoint(g.OpenAI.Endpoint),
			openai.WithModel(g.OpenAI.Model),
			openai.WithHTTPClient(&http.Client{Timeout: g.Timeout}),
		), nil
	}
}
