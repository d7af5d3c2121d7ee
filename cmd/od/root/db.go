package root

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"go.uber.org/zap"

	"odyssey/internal/config"
	"odyssey/internal/engine"
	"odyssey/internal/storage"
	"odyssey/internal/ui"
)

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, func(), error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogPath == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{cfg.LogPath}
	zc.ErrorOutputPaths = []string{cfg.LogPath}
	return zc.Build()
}

// cliNotifier prints engine notifications inline with command output.
type cliNotifier struct {
	out io.Writer
}

func (n cliNotifier) Notify(kind engine.NotifyKind, title, message string) {
	var icon string
	switch kind {
	case engine.NotifyLevelUp:
		icon = ui.IconSparkle
	case engine.NotifyBossDefeated:
		icon = ui.IconSword
	case engine.NotifyAchievement:
		icon = ui.IconTrophy
	case engine.NotifyDungeonCleared:
		icon = ui.IconCastle
	case engine.NotifyDamageTaken, engine.NotifyExhaustion:
		icon = ui.IconWarn
	case engine.NotifyInsufficientFunds:
		icon = ui.IconError
	default:
		icon = ui.IconBolt
	}
	fmt.Fprintf(n.out, "%s %s %s\n", icon, ui.Gold.Render(title), message)
}

// openService builds the engine and runs the daily rollover, so every
// command observes an up-to-date day.
func openService(ctx context.Context, out io.Writer) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, closeDB, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	opts := []engine.Option{engine.WithLogger(log)}
	if !cfg.Quiet {
		opts = append(opts, engine.WithNotifier(cliNotifier{out: out}))
	}
	svc := engine.NewService(db, opts...)

	if _, err := svc.EnsureDay(ctx); err != nil {
		closeDB()
		return nil, nil, err
	}

	cleanup := func() {
		_ = log.Sync()
		closeDB()
	}
	return svc, cleanup, nil
}
