package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/depeter/movefit/internal/cache"
	"github.com/depeter/movefit/internal/config"
	"github.com/depeter/movefit/internal/exercisedb"
	"github.com/depeter/movefit/internal/telemetry"
)

// env holds the dependencies shared by the window and the CLI commands.
type env struct {
	cfg   *config.Config
	api   exercisedb.API
	store *cache.RedisStore // nil when no Redis is configured or reachable

	tracing *telemetry.Provider
	logFile io.Closer
}

func setup(ctx context.Context, configPath string) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}
	e.logFile = setupLogging(cfg.Log)

	e.tracing, err = telemetry.Initialize(ctx, telemetry.Config{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version,
		OTLPEndpoint:   cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		Enabled:        cfg.Telemetry.Enabled,
	})
	if err != nil {
		log.Printf("Failed to init tracing, continuing without: %v", err)
	}

	client := exercisedb.NewClient(exercisedb.Options{
		BaseURL: cfg.API.BaseURL,
		Host:    cfg.API.Host,
		APIKey:  cfg.API.APIKey,
		Limit:   cfg.API.Limit,
	})
	if cfg.API.APIKey == "" {
		log.Printf("No ExerciseDB API key configured; set %s or api.api_key", config.EnvAPIKey)
	}
	e.api = client

	if cfg.Cache.RedisAddr != "" {
		dialCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		store, err := cache.Dial(dialCtx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		cancel()
		if err != nil {
			log.Printf("Redis unavailable, responses will not be cached: %v", err)
		} else {
			e.store = store
			e.api = exercisedb.NewCachedClient(client, store, cfg.CacheTTL())
		}
	}

	return e, nil
}

// setupLogging tees the standard logger into a rotating file when one is configured.
func setupLogging(cfg config.LogConfig) io.Closer {
	if cfg.File == "" {
		return nil
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, lj))
	return lj
}

func (e *env) Close() {
	if e.store != nil {
		e.store.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.tracing.Shutdown(ctx); err != nil {
		log.Printf("Failed to flush traces: %v", err)
	}
	if e.logFile != nil {
		log.SetOutput(os.Stderr)
		e.logFile.Close()
	}
}
