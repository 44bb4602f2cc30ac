package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"pasaydan.org/backend/internal/infra"
)

// Notify fans messages out to the configured Telegram chats.
type Notify struct {
	Telegram *infra.TelegramClient
}

func NewNotify(telegram *infra.TelegramClient) *Notify {
	return &Notify{
		Telegram: telegram,
	}
}

// Broadcast delivers the message synchronously. Used by the admin broadcast
// endpoint, where the caller wants to know delivery failed.
func (s *Notify) Broadcast(ctx context.Context, message string) error {
	return s.Telegram.Broadcast(ctx, message)
}

// Fire delivers the message in the background. Delivery failure is logged and
// never propagated: notifications must not fail the operation that emitted
// them.
func (s *Notify) Fire(message string) {
	if !s.Telegram.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		if err := s.Telegram.Broadcast(ctx, message); err != nil {
			log.Warn().
				Err(err).
				Str("evt.name", "notify.fire").
				Msg("failed to deliver notification")
		}
	}()
}
