// Package gemini wraps the Google GenAI SDK with the discipline-expert
// persona and the connectivity checks the rest of the application
// relies on. Callers degrade to fixed offline texts when Online
// reports no connectivity, so no Generate call should be attempted
// blind.
package gemini

import (
	"context"
	"errors"
	"net"
	"time"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for all text generation.
const DefaultModel = "gemini-3-flash-preview"

// ErrAPIKeyMissing is returned when no key is configured.
var ErrAPIKeyMissing = errors.New("API Key eksik. Lütfen Ayarlar sayfasından Gemini API anahtarınızı giriniz.")

// probeAddr is dialed to decide whether the machine is online.
const probeAddr = "generativelanguage.googleapis.com:443"

// Client talks to the Gemini API with a fixed model and system
// instruction.
type Client struct {
	apiKey string
	model  string

	// dial is swappable in tests.
	dial func(network, addr string, timeout time.Duration) (net.Conn, error)
}

// New builds a client for the given key. The key may be empty; calls
// will then fail with ErrAPIKeyMissing.
func New(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  DefaultModel,
		dial:   net.DialTimeout,
	}
}

// Online reports whether the Gemini endpoint is reachable.
func (c *Client) Online() bool {
	conn, err := c.dial("tcp", probeAddr, 3*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Generate sends a prompt under the discipline-expert persona. When
// grounding is set, Google Search is enabled so answers can cite the
// current regulation texts.
func (c *Client) Generate(ctx context.Context, prompt string, grounding bool) (string, error) {
	if c.apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: c.apiKey})
	if err != nil {
		return "", err
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
	}
	if grounding {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := client.Models.GenerateContent(ctx, c.model,
		genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// ValidateKey checks a candidate key with a minimal generation call.
func ValidateKey(ctx context.Context, key string) bool {
	if key == "" {
		return false
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: key})
	if err != nil {
		return false
	}
	_, err = client.Models.GenerateContent(ctx, DefaultModel, genai.Text("Test"), nil)
	return err == nil
}
