package telegram

import (
	"testing"
	"time"

	coreconfig "github.com/m3rciful/cardsbot/core/config"

	tele "gopkg.in/telebot.v4"
)

func TestBuildPollerLongpollDefaults(t *testing.T) {
	cfg := &coreconfig.Config{}
	cfg.Telegram.RunMode = coreconfig.RunModeLongpoll

	poller, ok := BuildPoller(cfg).(*tele.LongPoller)
	if !ok {
		t.Fatalf("poller is %T, want *tele.LongPoller", BuildPoller(cfg))
	}
	if poller.Timeout != 10*time.Second {
		t.Fatalf("timeout = %v, want 10s default", poller.Timeout)
	}

	cfg.Telegram.LongPollTimeoutSeconds = 25
	poller = BuildPoller(cfg).(*tele.LongPoller)
	if poller.Timeout != 25*time.Second {
		t.Fatalf("timeout = %v, want 25s", poller.Timeout)
	}
}

func TestBuildPollerWebhook(t *testing.T) {
	cfg := &coreconfig.Config{}
	cfg.Telegram.RunMode = coreconfig.RunModeWebhook
	cfg.Webhook.Listen = "0.0.0.0"
	cfg.Webhook.Port = 8443
	cfg.Webhook.URL = "https://bot.example.com/hook"

	hook, ok := BuildPoller(cfg).(*tele.Webhook)
	if !ok {
		t.Fatalf("poller is %T, want *tele.Webhook", BuildPoller(cfg))
	}
	if hook.Listen != "0.0.0.0:8443" {
		t.Fatalf("listen = %q", hook.Listen)
	}
	if hook.Endpoint.PublicURL != "https://bot.example.com/hook" {
		t.Fatalf("public url = %q", hook.Endpoint.PublicURL)
	}
}
