package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"nutrition-coach/internal/chatclient"
	"nutrition-coach/internal/config"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()

	store, closeStore := openStore(ctx, cfg, logger)
	api := chatclient.NewHTTPChatAPI(cfg.ChatAPIURL, nil)
	renderer := newTerminalRenderer(os.Stdout)
	controller := chatclient.NewController(store, api,
		chatclient.WithLogger(logger),
		chatclient.WithRenderer(renderer.Render),
	)

	fmt.Println("==== Smart Nutrition Coach ====")
	fmt.Println("Commands: /clear, /1-/3 pick a suggestion, empty line sends the current input, 'exit' quits.")
	if err := controller.Initialize(ctx); err != nil {
		logger.Warn("initialize conversation", zap.Error(err))
	}

	runErr := chatLoop(ctx, reader, controller)

	var result error
	if runErr != nil {
		result = multierror.Append(result, runErr)
	}
	if err := closeStore(); err != nil {
		result = multierror.Append(result, err)
	}
	_ = logger.Sync()
	if result != nil {
		log.Fatal(result)
	}
}

func chatLoop(ctx context.Context, reader *bufio.Reader, controller *chatclient.Controller) error {
	for {
		fmt.Print("You > ")
		text, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		text = strings.TrimRight(text, "\r\n")

		switch trimmed := strings.TrimSpace(text); {
		case strings.EqualFold(trimmed, "exit") || strings.EqualFold(trimmed, "salir"):
			fmt.Println("Bye!")
			return nil
		case trimmed == "/clear":
			if err := controller.Clear(ctx); err != nil {
				fmt.Printf("error clearing conversation: %v\n", err)
			}
		case strings.HasPrefix(trimmed, "/"):
			idx, convErr := strconv.Atoi(strings.TrimPrefix(trimmed, "/"))
			if convErr != nil {
				fmt.Println("Unknown command.")
				continue
			}
			if err := controller.SelectSuggestion(idx - 1); err != nil {
				fmt.Printf("Suggestion not available: %v\n", err)
				continue
			}
			fmt.Printf("Input: %q (press Enter to send)\n", controller.View().Input)
		case trimmed == "":
			if err := controller.SubmitInput(ctx); err != nil && !errors.Is(err, chatclient.ErrEmptyInput) {
				fmt.Printf("error: %v\n", err)
			}
		default:
			if err := controller.Submit(ctx, text); err != nil {
				fmt.Printf("error: %v\n", err)
			}
		}
	}
}

// openStore elige el backend de almacenamiento. Si Redis no responde se usa el archivo local.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (chatclient.Store, func() error) {
	noop := func() error { return nil }
	if cfg.ChatStore != config.StoreRedis {
		return chatclient.NewFileStore(cfg.ChatStoreDir), noop
	}
	if cfg.RedisAddr == "" {
		logger.Warn("redis store selected without REDIS_ADDR; using file store")
		return chatclient.NewFileStore(cfg.ChatStoreDir), noop
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctxPing).Err(); err != nil {
		logger.Warn("redis ping failed; using file store", zap.Error(err))
		_ = redisClient.Close()
		return chatclient.NewFileStore(cfg.ChatStoreDir), noop
	}
	return chatclient.NewRedisStore(redisClient), redisClient.Close
}
