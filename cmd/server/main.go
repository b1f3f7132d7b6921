package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"wumpusworld/db/migrations"
	httpadapter "wumpusworld/internal/adapter/http"
	"wumpusworld/internal/adapter/lock/local"
	"wumpusworld/internal/adapter/lock/redislock"
	metricsinmem "wumpusworld/internal/adapter/metrics/inmemory"
	"wumpusworld/internal/adapter/presets/yamlfile"
	gormrepo "wumpusworld/internal/adapter/repo/gorm"
	"wumpusworld/internal/adapter/repo/memory"
	"wumpusworld/internal/app/action"
	"wumpusworld/internal/app/auth"
	"wumpusworld/internal/app/environment"
	"wumpusworld/internal/app/observe"
	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/app/replay"
	"wumpusworld/internal/app/status"
	"wumpusworld/internal/config"
	"wumpusworld/internal/domain/game"
	"wumpusworld/internal/domain/world"
	"wumpusworld/internal/observability"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", os.Getenv("WUMPUS_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	repos, closeRepos, err := buildRepos(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("build repositories", zap.Error(err))
	}
	defer closeRepos()

	locker, closeLocker, err := buildLocker(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("build session locker", zap.Error(err))
	}
	defer closeLocker()

	presets, err := buildPresets(cfg.Game)
	if err != nil {
		logger.Fatal("load presets", zap.Error(err))
	}

	h := buildHandler(cfg, repos, locker, presets, metricsinmem.NewRecorder(), logger)

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)

	logger.Info("wumpus server listening",
		zap.String("addr", cfg.Server.Addr),
		zap.Bool("postgres", cfg.Database.DSN != ""),
		zap.Bool("redis_lock", cfg.Redis.Addr != ""),
		zap.Int("board_size", cfg.Game.BoardSize),
	)
	s.Spin()
}

type repos struct {
	Sessions    ports.SessionRepository
	Executions  ports.ActionExecutionRepository
	History     ports.HistoryRepository
	Credentials ports.CredentialRepository
	TxManager   ports.TxManager
}

// buildRepos uses postgres when a DSN is configured and an in-memory store
// otherwise.
func buildRepos(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (repos, func(), error) {
	if cfg.DSN == "" {
		store := memory.NewStore()
		logger.Warn("no database dsn configured, sessions are kept in memory")
		return repos{
			Sessions:    memory.NewSessionRepo(store),
			Executions:  memory.NewActionExecutionRepo(store),
			History:     memory.NewHistoryRepo(store),
			Credentials: memory.NewCredentialRepo(store),
			TxManager:   memory.NewTxManager(store),
		}, func() {}, nil
	}

	db, err := gormrepo.OpenPostgres(cfg.DSN)
	if err != nil {
		return repos{}, nil, err
	}
	if cfg.Migrate {
		if err := gormrepo.ApplyMigrations(ctx, db, migrations.FS, logger); err != nil {
			gormrepo.Close(db, logger)
			return repos{}, nil, fmt.Errorf("apply migrations: %w", err)
		}
	}
	return repos{
		Sessions:    gormrepo.NewSessionRepo(db),
		Executions:  gormrepo.NewActionExecutionRepo(db),
		History:     gormrepo.NewHistoryRepo(db),
		Credentials: gormrepo.NewCredentialRepo(db),
		TxManager:   gormrepo.NewTxManager(db),
	}, func() { gormrepo.Close(db, logger) }, nil
}

// buildLocker uses a redsync lock when redis is configured so several server
// instances can share one database.
func buildLocker(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (ports.SessionLocker, func(), error) {
	if cfg.Addr == "" {
		return local.NewLocker(), func() {}, nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	client, err := redislock.NewClient(pingCtx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
	}
	return redislock.NewLocker(client, cfg.LockExpiry, logger), closeFn, nil
}

func buildPresets(cfg config.GameConfig) (*yamlfile.Provider, error) {
	if cfg.PresetsFile == "" {
		return yamlfile.Default()
	}
	return yamlfile.LoadFromFile(cfg.PresetsFile)
}

func rulesFromConfig(cfg config.GameConfig) game.Rules {
	rules := game.DefaultRules()
	rules.MaxActions = cfg.MaxActions
	rules.InitialArrows = cfg.InitialArrows
	return rules
}

func buildHandler(cfg config.Config, r repos, locker ports.SessionLocker, presets ports.PresetProvider, kpi *metricsinmem.Recorder, logger *zap.Logger) httpadapter.Handler {
	rules := rulesFromConfig(cfg.Game)
	return httpadapter.Handler{
		RegisterUC: auth.RegisterUseCase{
			Credentials: r.Credentials,
			Sessions:    r.Sessions,
			TxManager:   r.TxManager,
			Rules:       rules,
			DefaultSize: cfg.Game.BoardSize,
			Now:         time.Now,
		},
		AuthUC: auth.VerifyUseCase{Credentials: r.Credentials},
		EnvironmentUC: environment.UseCase{
			TxManager:  r.TxManager,
			Sessions:   r.Sessions,
			History:    r.History,
			Executions: r.Executions,
			Locker:     locker,
			Presets:    presets,
			Generate:   world.GenerateOptions{MinPits: cfg.Game.MinPits, MaxPits: cfg.Game.MaxPits},
			Logger:     logger.Named("environment"),
			Now:        time.Now,
		},
		ActionUC: action.UseCase{
			TxManager:  r.TxManager,
			Sessions:   r.Sessions,
			ActionRepo: r.Executions,
			History:    r.History,
			Locker:     locker,
			Metrics:    kpi,
			Logger:     logger.Named("action"),
			Now:        time.Now,
		},
		ObserveUC:      observe.UseCase{Sessions: r.Sessions},
		StatusUC:       status.UseCase{Sessions: r.Sessions},
		ReplayUC:       replay.UseCase{History: r.History},
		KPI:            kpi,
		OperatorToken:  cfg.HTTP.OperatorToken,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	}
}
