package main

import (
	"context"
	"daily-pick/ai"
	"daily-pick/infrastructure/telegram"
	"daily-pick/internal"
	"daily-pick/media"
	"daily-pick/runtime"
	"daily-pick/runtime/workers"
	"daily-pick/services"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"google.golang.org/api/option"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run builds every client once, wires them into the services and blocks until a signal arrives.
// Deferred cleanups (Badger, Gemini client) run before the exit code is returned.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Roster store
	store, closeStore, err := openStore(ctx, config, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer closeStore()

	// 3. Joke model
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.GeminiAPIKey))
	if err != nil {
		return exitRuntime, fmt.Errorf("gemini client: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()
	model := lo.CoalesceOrEmpty(config.GeminiModel, ai.DefaultModel)
	jokes := ai.NewJokeGenerator(client.GenerativeModel(model), logger)
	logger.Info("Joke model selected", "model", model)

	// 4. Photos
	album, err := media.LoadPhotoAlbum(config.PhotoDir, rand.IntN, logger)
	if err != nil {
		return exitRuntime, err
	}

	// 5. Telegram
	bot, err := tgbotapi.NewBotAPI(config.TelegramToken)
	if err != nil {
		return exitRuntime, fmt.Errorf("telegram authorization failed: %w", err)
	}
	logger.Info("Authorized on Telegram", "bot", bot.Self.UserName)
	if err := telegram.RegisterMenu(bot); err != nil {
		logger.Warn("Command menu not registered", "error", err)
	}

	// 6. Services
	roster := services.NewRosterService(store, logger)
	picker := services.NewPickService(store, logger, time.Now, rand.IntN)
	router := services.NewCommandRouter(roster, picker, jokes, album, logger)

	// 7. Setup Supervision & Orchestration
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	registry := runtime.NewRegistry()
	orchestrator := runtime.NewOrchestrator(logger, sup, registry, router,
		telegram.NewMessenger(bot, logger), config.RoomBufferSize)
	sup.Add(
		telegram.NewPoller(bot, orchestrator, bot.Self.UserName, config.PollTimeout, logger),
		workers.NewQueueMonitorWorker(logger, registry, config.QueueCheckInterval, config.QueueWarnPercent),
	)

	errChan := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 9. Graceful Shutdown: room workers finish their current command.
	logger.Info("Shutting down gracefully...")
	orchestrator.Stop()
	<-done
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
