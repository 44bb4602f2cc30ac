package infra

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"pasaydan.org/backend/internal/app/appconfig"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramClient posts messages to the Telegram bot sendMessage API.
// A client with an empty token is valid and silently drops every message.
type TelegramClient struct {
	token   string
	chatIDs []string
	client  *http.Client
}

func Telegram(conf *appconfig.Config) *TelegramClient {
	return &TelegramClient{
		token:   conf.TelegramBotToken,
		chatIDs: conf.TelegramChatIDs,
		client: &http.Client{
			Timeout: time.Second * 10,
		},
	}
}

func (t *TelegramClient) Enabled() bool {
	return t.token != "" && len(t.chatIDs) > 0
}

// Broadcast sends text to every configured chat ID. Sends are retried a few
// times per chat; the first chat that exhausts its retries fails the call.
func (t *TelegramClient) Broadcast(ctx context.Context, text string) error {
	if !t.Enabled() {
		return nil
	}
	for _, chatID := range t.chatIDs {
		err := retry.Do(func() error {
			return t.sendMessage(ctx, chatID, text)
		}, retry.Attempts(3), retry.Context(ctx), retry.LastErrorOnly(true))
		if err != nil {
			return errors.Wrapf(err, "telegram: send to chat %s", chatID)
		}
	}
	return nil
}

func (t *TelegramClient) sendMessage(ctx context.Context, chatID, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id": chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	u := telegramAPIBase + "/bot" + t.token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var body struct {
		Ok          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return err
	}
	if !body.Ok {
		return errors.Errorf("telegram: api responded not-ok: %s", body.Description)
	}
	return nil
}
