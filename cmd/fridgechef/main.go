package main

import (
	"context"
	"fmt"
	"os"

	"fridgechef/internal/app"
	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("starting",
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.String("base_url", cfg.Client.BaseURL),
	)

	client := app.New(cfg, os.Stdin, os.Stdout)
	if err := client.Run(context.Background()); err != nil {
		common.LogError("client exited with error", zap.Error(err))
		os.Exit(1)
	}
}
