package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

type TelegramClient struct {
	BotToken string
	// BaseURL is overridable so tests can point the client at a stub server.
	BaseURL string
	client  *http.Client
}

func NewTelegramClient(botToken string) *TelegramClient {
	return &TelegramClient{
		BotToken: botToken,
		BaseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type sendMessagePayload struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

// SendMessageResult is the Bot API verdict for one sendMessage call.
// OK=false with a description is a logical rejection, not a transport error.
type SendMessageResult struct {
	OK          bool
	MessageID   int64
	Description string
}

// SendMessage posts text to the chat with Markdown formatting and link
// previews enabled. Exactly one attempt is made; the caller decides what a
// rejection means.
func (c *TelegramClient) SendMessage(ctx context.Context, chatID, text string) (*SendMessageResult, error) {
	payload := sendMessagePayload{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "Markdown",
		DisableWebPagePreview: false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sendMessage payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.BaseURL, c.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to Telegram API failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode Telegram response: %w", err)
	}

	return &SendMessageResult{
		OK:          decoded.OK,
		MessageID:   decoded.Result.MessageID,
		Description: decoded.Description,
	}, nil
}
