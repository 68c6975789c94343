package videogen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Result is the normalized outcome of one generation call. Status is either
// "completed" (VideoURL set) or "processing".
type Result struct {
	Status   string
	VideoURL string
}

// Client calls the external text-to-video API. One synchronous call per
// generation request, bounded by the configured timeout; no retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Key            string  `json:"key"`
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt"`
	Scheduler      string  `json:"scheduler"`
	Seconds        int     `json:"seconds"`
	GuidanceScale  float64 `json:"guidance_scale"`
	InferenceSteps int     `json:"num_inference_steps"`
	FPS            int     `json:"fps"`
}

// providerResponse tolerates the two message key spellings the provider is
// known to return ("message" and "messages"); no other aliases are accepted.
type providerResponse struct {
	Status   string   `json:"status"`
	Output   []string `json:"output"`
	Message  string   `json:"message"`
	Messages string   `json:"messages"`
}

func (r *providerResponse) message() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Messages
}

// Generate submits the prompt and normalizes the provider's response into a
// Result or a domain error.
func (c *Client) Generate(ctx context.Context, prompt string) (*Result, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	payload := generateRequest{
		Key:            c.apiKey,
		Prompt:         prompt,
		NegativePrompt: "low quality, blurry, distorted, text artifacts",
		Scheduler:      "UniPCMultistepScheduler",
		Seconds:        5,
		GuidanceScale:  7.5,
		InferenceSteps: 25,
		FPS:            24,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/video/text2video", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("video provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusPaymentRequired:
		return nil, ErrInsufficientBalance
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	var pr providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, &ProviderError{Message: fmt.Sprintf("undecodable response (status %d)", resp.StatusCode)}
	}

	switch pr.Status {
	case "success":
		if len(pr.Output) == 0 {
			return nil, &ProviderError{Message: "success response without output"}
		}
		return &Result{Status: "completed", VideoURL: pr.Output[0]}, nil
	case "processing":
		return &Result{Status: "processing"}, nil
	default:
		return nil, &ProviderError{Message: pr.message()}
	}
}
