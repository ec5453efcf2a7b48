package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ThatsCharith/quantum-password-strength-check/internal/api/handlers/passwords"
	mw "github.com/ThatsCharith/quantum-password-strength-check/internal/api/middlewares"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/api/router"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/config"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/strength"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/wordlist"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	ctx := context.Background()

	checker, err := buildChecker(ctx, cfg)
	if err != nil {
		logger.Fatal("wordlist load failed", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.RedisConfigured() {
		rdb, err = connectRedis(cfg)
		if err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		logger.Info("rate limiting enabled",
			zap.Float64("rate_per_second", cfg.RatePerSecond),
			zap.Int("burst", cfg.RateBurst),
		)
	}

	h := passwords.NewHandler(checker, logger)

	chain := []mw.Middleware{
		mw.RequestID,
		mw.Recovery(logger),
		mw.SecurityHeaders,
		mw.BodySizeLimit(cfg.MaxBodyBytes),
		mw.RequestLogger(logger),
	}
	if rdb != nil {
		tb := mw.NewRedisTokenBucket(rdb, cfg.RatePerSecond, cfg.RateBurst, mw.PerIPKey("check"), logger)
		chain = append(chain, tb.Middleware)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mw.Chain(router.New(h), chain...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

// buildChecker loads both wordlists and constructs the shared checker.
// A missing configured source is fatal; an empty path disables that list.
func buildChecker(ctx context.Context, cfg config.Config) (*strength.Checker, error) {
	store := wordlist.NewStore()

	var s3Client *s3.Client
	if cfg.WordlistBucket != "" {
		var err error
		s3Client, err = wordlist.NewS3Client(ctx)
		if err != nil {
			return nil, err
		}
	}

	load := func(name string) ([]string, error) {
		if name == "" {
			return nil, nil
		}
		src := wordlist.File(name)
		if s3Client != nil {
			src = wordlist.Object(s3Client, cfg.WordlistBucket, name)
		}
		return store.Load(ctx, src)
	}

	weak, err := load(cfg.WeakWordlist)
	if err != nil {
		return nil, err
	}
	banned, err := load(cfg.BannedWordlist)
	if err != nil {
		return nil, err
	}
	return strength.NewChecker(weak, banned), nil
}

func connectRedis(cfg config.Config) (*redis.Client, error) {
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		// ParseURL handles both redis:// and rediss:// (TLS) schemes.
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb = redis.NewClient(opt)
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			Username:     cfg.RedisUser,
			Password:     cfg.RedisPassword,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	}

	// Fail fast if Redis is unreachable.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
