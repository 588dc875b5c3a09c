package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/odic3o/interbank-academy-25/internal/commands"
	"github.com/odic3o/interbank-academy-25/internal/logger"
)

func main() {
	// .env is optional; it can set MOVIMIENTOS_CONFIG before flags are built.
	_ = godotenv.Load()

	log := logger.New()
	rootCmd := commands.NewRootCommand(log)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
