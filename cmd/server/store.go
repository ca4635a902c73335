package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// storeFlags are shared by every command that touches the document store
type storeFlags struct {
	store      string
	redisAddr  string
	sqlitePath string
	sheetID    string
	ruleset    string
	logLevel   string
	logFormat  string
}

func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.store, "store", "", "document store: redis or sqlite (env RPG_SHEET_STORE)")
	cmd.Flags().StringVar(&f.redisAddr, "redis-addr", "", "redis address (env RPG_SHEET_REDIS_ADDR)")
	cmd.Flags().StringVar(&f.sqlitePath, "sqlite-path", "", "sqlite database file (env RPG_SHEET_SQLITE_PATH)")
	cmd.Flags().StringVar(&f.sheetID, "sheet-id", "", "id of the sheet document (env RPG_SHEET_SHEET_ID)")
	cmd.Flags().StringVar(&f.ruleset, "ruleset", "", "path to a ruleset yaml replacing the built-in tables (env RPG_SHEET_RULESET_PATH)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (env RPG_SHEET_LOG_LEVEL)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "text or json (env RPG_SHEET_LOG_FORMAT)")
}

// apply overrides env values with flags the user set explicitly
func (f *storeFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	overrides := map[string]struct {
		value  string
		target *string
	}{
		"store":       {f.store, &cfg.Store},
		"redis-addr":  {f.redisAddr, &cfg.RedisAddr},
		"sqlite-path": {f.sqlitePath, &cfg.SQLitePath},
		"sheet-id":    {f.sheetID, &cfg.SheetID},
		"ruleset":     {f.ruleset, &cfg.RulesetPath},
		"log-level":   {f.logLevel, &cfg.LogLevel},
		"log-format":  {f.logFormat, &cfg.LogFormat},
	}
	for name, o := range overrides {
		if cmd.Flags().Changed(name) {
			*o.target = o.value
		}
	}
}

// loadConfig reads env, applies flags, validates and installs the logger
func loadConfig(cmd *cobra.Command, flags *storeFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags.apply(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return cfg, nil
}

// openStore connects the configured document store. The returned func
// releases it.
func openStore(ctx context.Context, cfg *config.Config) (sheet.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		repo, err := sheet.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		slog.InfoContext(ctx, "using sqlite store", "path", cfg.SQLitePath)
		return repo, func() { _ = repo.Close() }, nil

	default:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		if err := redis.Ping(ctx, client); err != nil {
			// the store may come up later; saves and loads report the failure
			slog.WarnContext(ctx, "redis not reachable", "addr", cfg.RedisAddr, "error", err)
		} else {
			slog.InfoContext(ctx, "using redis store", "addr", cfg.RedisAddr)
		}
		return sheet.NewRedisRepository(client), func() { _ = client.Close() }, nil
	}
}

// buildEngine loads the ruleset and builds the rules engine
func buildEngine(cfg *config.Config, roller rules.Roller) (*rules.Engine, error) {
	tables, err := rules.DefaultTables()
	if cfg.RulesetPath != "" {
		tables, err = rules.LoadTables(cfg.RulesetPath)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ruleset")
	}

	return rules.New(&rules.Config{
		Tables:      tables,
		Roller:      roller,
		IDGenerator: idgen.NewUUID("char"),
	})
}
