package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// DefaultAPIBase is the Telegram Bot API endpoint.
const DefaultAPIBase = "https://api.telegram.org"

// MaxMessageLength is the longest text Telegram accepts in one message.
const MaxMessageLength = 4096

var (
	// ErrBreakerOpen is returned while the send breaker rejects calls.
	ErrBreakerOpen = errors.New("telegram: circuit breaker open")
	// ErrMessageTooLong is returned for replies Telegram would reject.
	ErrMessageTooLong = errors.New("telegram: message too long")
)

// APIError is a non-200 answer from the Bot API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error: status %d, body: %s", e.StatusCode, e.Body)
}

// Permanent reports whether resending the same message cannot succeed.
// Client errors are permanent except 429, which asks the caller to back off.
func (e *APIError) Permanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusTooManyRequests
}

// IsPermanent reports whether err is a send failure tied to one chat or
// message rather than to the API as a whole.
func IsPermanent(err error) bool {
	if errors.Is(err, ErrMessageTooLong) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Permanent()
}

// TelegramOptions tunes a TelegramNotifier.
type TelegramOptions struct {
	APIBase    string
	ProxyURL   string
	SendPerSec float64
	// AllowedChats restricts polling to these chat ids. Empty allows all.
	AllowedChats []string
	Backoff      time.Duration
}

// TelegramNotifier sends replies via the Telegram Bot API.
type TelegramNotifier struct {
	BotToken string
	Client   *http.Client

	apiBase string
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	allowed map[string]bool
	backoff time.Duration
	log     zerolog.Logger
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken string, opts TelegramOptions, log zerolog.Logger) *TelegramNotifier {
	transport := &http.Transport{}
	if opts.ProxyURL != "" {
		if u, err := url.Parse(opts.ProxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if opts.APIBase == "" {
		opts.APIBase = DefaultAPIBase
	}
	if opts.SendPerSec <= 0 {
		opts.SendPerSec = 1
	}
	if opts.Backoff <= 0 {
		opts.Backoff = time.Second
	}
	allowed := make(map[string]bool, len(opts.AllowedChats))
	for _, id := range opts.AllowedChats {
		allowed[id] = true
	}
	log = log.With().Str("component", "telegram").Logger()
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "telegram-send",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 5
		},
		// A blocked bot or a rejected message says nothing about the API's health.
		IsSuccessful: func(err error) bool {
			return err == nil || IsPermanent(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Stringer("from", from).Stringer("to", to).Msg("breaker state changed")
		},
	})
	return &TelegramNotifier{
		BotToken: botToken,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		apiBase: opts.APIBase,
		limiter: rate.NewLimiter(rate.Limit(opts.SendPerSec), 1),
		breaker: breaker,
		allowed: allowed,
		backoff: opts.Backoff,
		log:     log,
	}
}

func (t *TelegramNotifier) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", t.apiBase, t.BotToken, method)
}

// Allowed reports whether replies to chatID are permitted.
func (t *TelegramNotifier) Allowed(chatID string) bool {
	return len(t.allowed) == 0 || t.allowed[chatID]
}

// Send sends an HTML message to a chat.
func (t *TelegramNotifier) Send(ctx context.Context, chatID, text string) error {
	if n := utf8.RuneCountInString(text); n > MaxMessageLength {
		return fmt.Errorf("%w: %d characters", ErrMessageTooLong, n)
	}
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	_, err := t.breaker.Execute(func() (interface{}, error) {
		return nil, t.post(ctx, chatID, text)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrBreakerOpen, err)
	}
	return err
}

func (t *TelegramNotifier) post(ctx context.Context, chatID, text string) error {
	payload := map[string]string{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint("sendMessage"), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}

// SendWithRetry sends a message with exponential backoff retry.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, chatID, text string, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		err := t.Send(ctx, chatID, text)
		if err == nil {
			return nil
		}
		lastErr = err
		if errors.Is(err, ErrBreakerOpen) || IsPermanent(err) || ctx.Err() != nil {
			break
		}
		if i == maxRetries {
			break
		}
		backoff := t.backoff << uint(i)
		t.log.Warn().Err(err).Int("attempt", i+1).Int("max", maxRetries+1).Dur("backoff", backoff).Msg("send failed, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("send to %s: %w", chatID, lastErr)
}
