package bootstrap

import (
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func Loadenv() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}
}
