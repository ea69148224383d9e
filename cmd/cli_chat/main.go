package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mindful-ai/internal/classifier"
	"mindful-ai/internal/config"
	"mindful-ai/internal/db"
	"mindful-ai/internal/domain"
	"mindful-ai/internal/llm"
	"mindful-ai/internal/repository"
	"mindful-ai/internal/service"
)

// Chat de consola contra el mismo pipeline del servidor: util para probar
// clasificacion y prompts sin levantar el API.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	clf, err := classifier.LoadModel(cfg.ModelPath)
	if err != nil {
		log.Fatalf("load classifier model: %v", err)
	}

	responseRepo := repository.NewPgResponseRepository(pool)
	personalRepo := repository.NewPgPersonalInfoRepository(pool)
	chatRepo := repository.NewPgChatRecordRepository(pool)
	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	chatSvc := service.NewChatService(logger, responseRepo, personalRepo, chatRepo, clf, llmClient)

	fmt.Print("Email: ")
	emailID, _ := reader.ReadString('\n')
	emailID = strings.TrimSpace(emailID)
	if emailID == "" {
		log.Fatal("email requerido")
	}

	history := domain.ChatHistory{}
	fmt.Println("Escribi tu mensaje (conteniendo 'stop' para terminar).")

	for {
		fmt.Print("> ")
		message, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}

		result, err := chatSvc.Advance(ctx, emailID, message, history)
		if err != nil {
			log.Fatalf("turno de chat: %v", err)
		}

		fmt.Println(result.Response)
		history = result.History
		if result.Stop {
			return
		}
	}
}
