package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Telegram Bot API types, reduced to the fields this bot consumes.

// Update is one entry from getUpdates.
type Update struct {
	UpdateID      int            `json:"update_id"`
	Message       *Message       `json:"message"`
	CallbackQuery *CallbackQuery `json:"callback_query"`
}

// Message is an inbound or referenced chat message.
type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// Chat identifies a Telegram chat.
type Chat struct {
	ID int64 `json:"id"`
}

// CallbackQuery is an inline keyboard button press.
type CallbackQuery struct {
	ID      string   `json:"id"`
	Message *Message `json:"message"`
	Data    string   `json:"data"`
}

// InlineKeyboard is the reply_markup payload for inline keyboards.
type InlineKeyboard struct {
	InlineKeyboard [][]InlineButton `json:"inline_keyboard"`
}

// InlineButton is one inline keyboard button.
type InlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
}

const defaultBaseURL = "https://api.telegram.org"

// Client is a minimal Telegram Bot API client over long polling.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	logger  *logrus.Entry
}

// NewClient creates a Telegram client. The HTTP timeout leaves headroom
// over the long-poll timeout so getUpdates calls are not cut short.
func NewClient(token string, pollTimeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: pollTimeout + 10*time.Second},
		logger:  logger,
	}
}

// SetBaseURL overrides the API base URL. Tests point it at a local server.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

// GetUpdates long-polls for new updates starting at offset.
func (c *Client) GetUpdates(ctx context.Context, offset int, timeout time.Duration) ([]Update, error) {
	url := fmt.Sprintf("%s/bot%s/getUpdates?offset=%d&timeout=%d",
		c.baseURL, c.token, offset, int(timeout.Seconds()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build getUpdates request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("getUpdates: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		OK     bool     `json:"ok"`
		Result []Update `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode getUpdates response: %w", err)
	}
	if !body.OK {
		return nil, fmt.Errorf("getUpdates: telegram returned ok=false (status %d)", resp.StatusCode)
	}

	return body.Result, nil
}

// SendMessage sends a Markdown message, optionally with an inline keyboard.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard [][]InlineButton) error {
	payload := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	if len(keyboard) > 0 {
		payload["reply_markup"] = InlineKeyboard{InlineKeyboard: keyboard}
	}
	return c.call(ctx, "sendMessage", payload)
}

// Send sends a plain message without a keyboard. Convenience for the
// daily report dispatch.
func (c *Client) Send(ctx context.Context, chatID int64, text string) error {
	return c.SendMessage(ctx, chatID, text, nil)
}

// EditMessageText rewrites an already-sent message in place.
func (c *Client) EditMessageText(ctx context.Context, chatID int64, messageID int, text string, keyboard [][]InlineButton) error {
	payload := map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	if len(keyboard) > 0 {
		payload["reply_markup"] = InlineKeyboard{InlineKeyboard: keyboard}
	}
	return c.call(ctx, "editMessageText", payload)
}

// AnswerCallback acknowledges a callback query with an optional toast.
func (c *Client) AnswerCallback(ctx context.Context, callbackQueryID, text string) error {
	payload := map[string]any{
		"callback_query_id": callbackQueryID,
	}
	if text != "" {
		payload["text"] = text
	}
	return c.call(ctx, "answerCallbackQuery", payload)
}

// call posts a JSON payload to a bot method. On a parse-entities failure
// the message is retried once without parse_mode.
func (c *Client) call(ctx context.Context, method string, payload map[string]any) error {
	status, respBody, err := c.post(ctx, method, payload)
	if err != nil {
		return err
	}
	if status == http.StatusOK {
		return nil
	}

	if _, hasMode := payload["parse_mode"]; hasMode && strings.Contains(string(respBody), "parse") {
		delete(payload, "parse_mode")
		status, respBody, err = c.post(ctx, method, payload)
		if err != nil {
			return err
		}
		if status == http.StatusOK {
			return nil
		}
	}

	return fmt.Errorf("telegram %s: status %d: %s", method, status, respBody)
}

func (c *Client) post(ctx context.Context, method string, payload map[string]any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, respBody, nil
}
