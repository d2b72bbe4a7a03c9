package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tmdbkit/internal/config"
	"tmdbkit/internal/language"
	"tmdbkit/internal/logging"
	"tmdbkit/tmdb"
)

type globalFlags struct {
	configPath string
	json       bool
	debug      bool
	language   string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	clientOnce sync.Once
	client     *tmdb.Client
	logger     *slog.Logger
	clientErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		if c.flags.debug {
			cfg.TMDB.Debug = true
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// tmdbClient builds the client once per invocation. Debug mode also lowers
// the log level so the exchange logs are visible.
func (c *commandContext) tmdbClient() (*tmdb.Client, error) {
	c.clientOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.clientErr = err
			return
		}
		if cfg.TMDB.Debug {
			cfg.Logging.Level = "debug"
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.clientErr = fmt.Errorf("setup logging: %w", err)
			return
		}
		c.logger = logger

		timeout := cfg.Timeout()
		client, err := tmdb.New(
			tmdb.WithBaseURL(cfg.TMDB.BaseURL),
			tmdb.WithLogger(logger),
			tmdb.WithHTTPClientFactory(func() *http.Client {
				return &http.Client{Timeout: timeout}
			}),
		)
		if err != nil {
			c.clientErr = fmt.Errorf("create tmdb client: %w", err)
			return
		}
		if cfg.TMDB.APIKey == "" {
			logging.WarnWithContext(logger, "tmdb api key not configured",
				"tmdb_api_key_missing",
				config.MissingAPIKeyHint(),
				"requests will be rejected with 401",
			)
		}
		c.client = client.SetAPIKey(cfg.TMDB.APIKey).SetDebug(cfg.TMDB.Debug)
	})
	return c.client, c.clientErr
}

// language resolves the --language flag, falling back to the config value.
func (c *commandContext) language() (string, error) {
	if raw := strings.TrimSpace(c.flags.language); raw != "" {
		lang, err := language.Normalize(raw)
		if err != nil {
			return "", fmt.Errorf("--language: %w", err)
		}
		return lang, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.TMDB.Language, nil
}

// requestContext tags the command's context with a correlation id so debug
// logs for one invocation can be grouped.
func requestContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithRequestID(ctx, uuid.NewString())
}

// run resolves the client and language, then invokes fn and renders its
// result.
func (c *commandContext) run(cmd *cobra.Command, fn func(context.Context, *tmdb.Client, string) (renderable, error)) error {
	client, err := c.tmdbClient()
	if err != nil {
		return err
	}
	lang, err := c.language()
	if err != nil {
		return err
	}
	ctx := requestContext(cmd)
	result, err := fn(ctx, client, lang)
	if err != nil {
		return err
	}
	logging.WithContext(ctx, c.logger).Debug("command complete", logging.String("command", cmd.CommandPath()))
	return c.render(cmd, result)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
