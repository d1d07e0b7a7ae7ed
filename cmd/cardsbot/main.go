package main

import (
	"log"

	corecmd "github.com/m3rciful/cardsbot/core/cmd"
	coreconfig "github.com/m3rciful/cardsbot/core/config"
	"github.com/m3rciful/cardsbot/telegram"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		Bootstrap: func(cfg *coreconfig.Config) (corecmd.TelegramApp, error) {
			return telegram.NewApp(cfg)
		},
	})
	if err != nil {
		log.Fatalf("cardsbot: %v", err)
	}
}
