// internal/adapters/hf/client.go
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/daviderapp/travel-aggregator/internal/adapters/observability"
)

// Client talks to a HuggingFace-style chat-completions endpoint. One
// client is shared by every model backend; the per-model Backend type
// is what plugs into the extraction cascade.
type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, timeout time.Duration, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 2
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		key:  key,
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// Backend binds the shared client to one model name.
func (c *Client) Backend(model string) *Backend { return &Backend{c: c, model: model} }

type Backend struct {
	c     *Client
	model string
}

func (b *Backend) Name() string { return b.model }

// Failure classes surfaced to the cascade. All of them are non-fatal
// there; they exist so logs and metrics can tell auth problems from
// transient ones.
var (
	ErrUnauthorized = errors.New("hf: unauthorized")
	ErrForbidden    = errors.New("hf: forbidden")
	ErrRateLimited  = errors.New("hf: rate limited")
	ErrUnavailable  = errors.New("hf: model loading or unavailable")
	ErrNotFound     = errors.New("hf: model not found")
	ErrEmptyReply   = errors.New("hf: empty reply")
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Complete sends one system+user exchange and returns the raw reply
// text. There is no retry here: the cascade's contract is to move to
// the next backend on any failure, and a timeout counts as one.
func (b *Backend) Complete(ctx context.Context, system, user string) (string, error) {
	if err := b.c.rl.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model: b.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream:      false,
		MaxTokens:   600,
		Temperature: 0.1,
	})
	if err != nil {
		return "", err
	}

	url := b.c.base + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+b.c.key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := b.c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		observability.ObserveExternal("hf", b.model, 0)
		return "", err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("hf", b.model, resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", ErrUnauthorized
	case http.StatusForbidden:
		return "", ErrForbidden
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusServiceUnavailable:
		return "", ErrUnavailable
	case http.StatusNotFound:
		return "", ErrNotFound
	default:
		bs, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("hf: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(bs)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("hf: decode reply: %w", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", ErrEmptyReply
	}
	return out.Choices[0].Message.Content, nil
}
