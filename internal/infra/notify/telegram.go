package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// TelegramNotifier pushes operator-facing messages to a chat. Delivery
// is best effort: every failure is logged and swallowed, a lost message
// must never fail a payment workflow.
type TelegramNotifier struct {
	client *resty.Client
	token  string
	chatID string
}

func NewTelegram(token, chatID string) *TelegramNotifier {
	client := resty.New()
	client.SetTimeout(5 * time.Second)

	return &TelegramNotifier{
		client: client,
		token:  token,
		chatID: chatID,
	}
}

func (t *TelegramNotifier) Notify(ctx context.Context, text string) {
	if t.token == "" || t.chatID == "" {
		return
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.token)
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"chat_id": t.chatID,
			"text":    text,
		}).
		Post(url)
	if err != nil {
		log.Println("⚠️ Telegram notify failed:", err)
		return
	}
	if resp.StatusCode() != 200 {
		log.Printf("⚠️ Telegram notify failed: status %d body %s", resp.StatusCode(), resp.String())
	}
}
