package telegram

import (
	"fmt"

	"github.com/m3rciful/cardsbot/bot"
	coreconfig "github.com/m3rciful/cardsbot/core/config"
	coredatabase "github.com/m3rciful/cardsbot/core/database"
	coretelegram "github.com/m3rciful/cardsbot/core/telegram"
	"github.com/m3rciful/cardsbot/core/telegram/commands"
	"github.com/m3rciful/cardsbot/core/telegram/middleware"
	"github.com/m3rciful/cardsbot/dialog"
	"github.com/m3rciful/cardsbot/state"

	tele "gopkg.in/telebot.v4"
)

// App assembles the cards bot: storage backend, conversation state,
// dialog set, turn handler, and the Telegram adapter.
type App struct {
	cfg     *coreconfig.Config
	adapter *Adapter
}

// NewApp wires the application from configuration.
func NewApp(cfg *coreconfig.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("telegram: nil config provided")
	}

	storage, err := buildStorage(cfg)
	if err != nil {
		return nil, err
	}

	conversation := state.NewConversationState(storage)
	dialogState := conversation.CreateProperty(bot.DialogStateProperty)

	dialogs := dialog.NewSet(dialogState)
	dialogs.Add(dialog.NewChoicePrompt(bot.PromptID))

	handler, err := bot.New(conversation, dialogs, cfg.Bot.Greeting)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:     cfg,
		adapter: NewAdapter(handler, conversation),
	}, nil
}

// buildStorage constructs the configured conversation state backend.
func buildStorage(cfg *coreconfig.Config) (state.Storage, error) {
	switch cfg.Storage.Backend {
	case coreconfig.StorageMemory:
		return state.NewMemoryStorage(), nil
	case coreconfig.StorageRedis:
		client, err := state.ConnectRedis(cfg.Storage.Redis)
		if err != nil {
			return nil, err
		}
		return state.NewRedisStorage(client, ""), nil
	case coreconfig.StoragePostgres:
		if err := coredatabase.RunMigrations(cfg.Storage.Database); err != nil {
			return nil, err
		}
		db, err := coredatabase.Connect(cfg.Storage.Database)
		if err != nil {
			return nil, err
		}
		return state.NewPostgresStorage(db), nil
	}
	return nil, fmt.Errorf("telegram: unknown storage backend %q", cfg.Storage.Backend)
}

// TelegramRunOptions exposes the bot wiring to the core runner.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.adapter.HandleStart,
		Description: "Show the cards menu",
	})
	reg.RegisterCommand("/reset", commands.Command{
		Handler:     a.adapter.HandleReset,
		Description: "Clear conversation state",
		Hidden:      true,
	})

	// Recovery is applied globally below; the text route only adds logging.
	textHandler := middleware.LoggerMiddleware(a.adapter.HandleText)

	return coretelegram.RunOptions{
		Config:   a.cfg,
		Registry: reg,
		Routes: []coretelegram.Route{
			{Endpoint: tele.OnText, Handler: textHandler},
		},
		Middlewares: []coretelegram.Middleware{
			{Name: "recover", Use: middleware.RecoverMiddleware},
		},
	}, nil
}
