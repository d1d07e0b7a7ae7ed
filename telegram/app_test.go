package telegram

import (
	"testing"

	coreconfig "github.com/m3rciful/cardsbot/core/config"

	tele "gopkg.in/telebot.v4"
)

func memoryConfig() *coreconfig.Config {
	cfg := &coreconfig.Config{}
	cfg.Telegram.Token = "123:abc"
	cfg.Bot.Greeting = coreconfig.GreetingVideo
	cfg.Storage.Backend = coreconfig.StorageMemory
	return cfg
}

func TestNewAppRejectsNilConfig(t *testing.T) {
	if _, err := NewApp(nil); err == nil {
		t.Fatal("NewApp accepted nil config")
	}
}

func TestNewAppRejectsUnknownBackend(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Backend = "cassandra"
	if _, err := NewApp(cfg); err == nil {
		t.Fatal("NewApp accepted unknown storage backend")
	}
}

func TestTelegramRunOptionsWiring(t *testing.T) {
	app, err := NewApp(memoryConfig())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	opts, err := app.TelegramRunOptions()
	if err != nil {
		t.Fatalf("TelegramRunOptions: %v", err)
	}

	if _, _, ok := opts.Registry.LookupCommand("/start"); !ok {
		t.Error("/start command not registered")
	}
	if _, _, ok := opts.Registry.LookupCommand("/reset"); !ok {
		t.Error("/reset command not registered")
	}
	visible := opts.Registry.ListCommands(true)
	if len(visible) != 1 || visible[0].Text != "/start" {
		t.Errorf("visible commands = %v, want only /start", visible)
	}

	if len(opts.Routes) != 1 || opts.Routes[0].Endpoint != tele.OnText {
		t.Fatalf("routes = %v, want a single OnText route", opts.Routes)
	}

	// Recovery runs once, as a global middleware.
	if len(opts.Middlewares) != 1 || opts.Middlewares[0].Name != "recover" {
		t.Fatalf("middlewares = %v, want a single global recover", opts.Middlewares)
	}
}
