package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAIClient calls the OpenAI image edit API (POST /v1/images/edits) with a
// style prompt. The API is synchronous and returns the image as base64.
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	model      string
	quality    string
	httpClient *http.Client
}

func NewOpenAIClient(baseURL, apiKey, model, quality string) *OpenAIClient {
	return &OpenAIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		quality: quality,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (c *OpenAIClient) Name() string {
	return "openai"
}

type openAIEditRequest struct {
	Images        []openAIImageRef `json:"images"`
	Prompt        string           `json:"prompt"`
	Model         string           `json:"model"`
	Quality       string           `json:"quality"`
	OutputFormat  string           `json:"output_format"`
	InputFidelity string           `json:"input_fidelity"`
	Moderation    string           `json:"moderation"`
	N             int              `json:"n"`
	Size          string           `json:"size"`
}

type openAIImageRef struct {
	ImageURL string `json:"image_url"`
}

type openAIEditResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
		URL     string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *OpenAIClient) Generate(ctx context.Context, genReq Request) (*Result, error) {
	if !strings.HasPrefix(genReq.SourceImageURL, "https://") {
		return nil, &Error{Backend: c.Name(), Class: FailureFatal,
			Err: fmt.Errorf("source image URL must be public HTTPS (set PUBLIC_BASE_URL)")}
	}

	payload := openAIEditRequest{
		Images:        []openAIImageRef{{ImageURL: genReq.SourceImageURL}},
		Prompt:        genReq.PromptText,
		Model:         c.model,
		Quality:       c.quality,
		OutputFormat:  "jpeg",
		InputFidelity: "high",
		// Less restrictive moderation reduces false positives on portraits.
		Moderation: "low",
		N:          1,
		Size:       "1024x1024",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/v1/images/edits"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Backend: c.Name(), Class: FailureTransient, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Backend: c.Name(), Class: FailureTransient, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.classifyStatus(resp.StatusCode, body)
	}

	var result openAIEditResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &Error{Backend: c.Name(), Class: FailureTransient,
			Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(result.Data) == 0 {
		msg := result.Error.Message
		if msg == "" {
			msg = "empty data in response"
		}
		return nil, &Error{Backend: c.Name(), Class: FailureFatal,
			Err: fmt.Errorf("image edit failed: %s", msg)}
	}

	first := result.Data[0]
	if first.B64JSON != "" {
		content, err := base64.StdEncoding.DecodeString(first.B64JSON)
		if err != nil {
			return nil, &Error{Backend: c.Name(), Class: FailureFatal,
				Err: fmt.Errorf("failed to decode b64 image: %w", err)}
		}
		return &Result{Data: content, ContentType: "image/jpeg"}, nil
	}

	if first.URL != "" {
		return c.fetchResult(ctx, first.URL)
	}

	return nil, &Error{Backend: c.Name(), Class: FailureFatal,
		Err: fmt.Errorf("unexpected response format")}
}

func (c *OpenAIClient) fetchResult(ctx context.Context, resultURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", resultURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Backend: c.Name(), Class: FailureTransient, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &Error{Backend: c.Name(), Class: FailureTransient,
			Err: fmt.Errorf("failed to fetch result image: status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Backend: c.Name(), Class: FailureTransient, Err: err}
	}

	contentType := strings.TrimSpace(strings.Split(resp.Header.Get("Content-Type"), ";")[0])
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return &Result{Data: data, ContentType: contentType}, nil
}

func (c *OpenAIClient) classifyStatus(status int, body []byte) error {
	detail := string(body)
	if len(detail) > 500 {
		detail = detail[:500]
	}

	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Backend: c.Name(), Class: FailureRateLimited,
			Err: fmt.Errorf("status %d: %s", status, detail)}
	case status >= 500:
		return &Error{Backend: c.Name(), Class: FailureTransient,
			Err: fmt.Errorf("status %d: %s", status, detail)}
	default:
		return &Error{Backend: c.Name(), Class: FailureFatal,
			Err: fmt.Errorf("status %d: %s", status, detail)}
	}
}
