package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mindful-ai/internal/classifier"
	"mindful-ai/internal/config"
	"mindful-ai/internal/db"
	apihttp "mindful-ai/internal/http"
	"mindful-ai/internal/llm"
	"mindful-ai/internal/repository"
	"mindful-ai/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	clf, err := classifier.LoadModel(cfg.ModelPath)
	if err != nil {
		logger.Fatal("load classifier model", zap.Error(err), zap.String("path", cfg.ModelPath))
	}

	responseRepo := repository.NewPgResponseRepository(pool)
	personalRepo := repository.NewPgPersonalInfoRepository(pool)
	chatRepo := repository.NewPgChatRecordRepository(pool)
	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	chatSvc := service.NewChatService(logger, responseRepo, personalRepo, chatRepo, clf, llmClient)

	var limiter service.ChatRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisChatRateLimiter(redisClient, time.Minute, 20)
		}
		cancel()
	}

	aiHandler := apihttp.NewAIHandler(logger, chatSvc, limiter)
	dataHandler := apihttp.NewDataHandler(logger, responseRepo, personalRepo, chatRepo)
	router := apihttp.NewRouter(logger, aiHandler, dataHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
