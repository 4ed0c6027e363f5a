package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// styleTransferVersion pins the fofr/style-transfer model:
// structure_image keeps the subject's pose and face, style_image supplies
// the artistic style.
const styleTransferVersion = "fofr/style-transfer:f1023890703bc0a5a3a2c21b5e498833be5f6ef6e70e9daf6b9b3a4fd8309cf0"

const styleTransferPrompt = "Adapt the style of the style image to the structure image, keeping the " +
	"brush strokes and brush details while emphasizing the features of the structure image, adapting " +
	"them to the time period and style of the style image. Very important to keep the features in the " +
	"structure image, so people are recognizable."

// ReplicateClient drives Replicate predictions: submit, poll until the
// prediction settles, then download the output.
type ReplicateClient struct {
	baseURL         string
	apiToken        string
	pollingInterval time.Duration
	pollingTimeout  time.Duration
	httpClient      *http.Client
}

func NewReplicateClient(apiToken string, pollingInterval, pollingTimeout time.Duration) *ReplicateClient {
	return &ReplicateClient{
		baseURL:         "https://api.replicate.com/v1",
		apiToken:        apiToken,
		pollingInterval: pollingInterval,
		pollingTimeout:  pollingTimeout,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (c *ReplicateClient) Name() string {
	return "replicate"
}

type replicatePrediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  string          `json:"error"`
}

func (c *ReplicateClient) Generate(ctx context.Context, genReq Request) (*Result, error) {
	if !strings.HasPrefix(genReq.SourceImageURL, "https://") || !strings.HasPrefix(genReq.StyleImageURL, "https://") {
		return nil, &Error{Backend: c.Name(), Class: FailureFatal,
			Err: fmt.Errorf("image URLs must be public HTTPS (set PUBLIC_BASE_URL)")}
	}

	predictionID, err := c.submit(ctx, genReq)
	if err != nil {
		return nil, err
	}

	outputURL, err := c.pollResult(ctx, predictionID)
	if err != nil {
		return nil, err
	}

	return c.download(ctx, outputURL)
}

func (c *ReplicateClient) submit(ctx context.Context, genReq Request) (string, error) {
	payload := map[string]interface{}{
		"version": styleTransferVersion,
		"input": map[string]interface{}{
			"structure_image":              genReq.SourceImageURL,
			"style_image":                  genReq.StyleImageURL,
			"prompt":                       styleTransferPrompt,
			"structure_denoising_strength": 1,
			"output_format":                "webp",
			"output_quality":               80,
			"number_of_images":             1,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/predictions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Backend: c.Name(), Class: FailureTransient, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Backend: c.Name(), Class: FailureTransient, Err: err}
	}

	if resp.StatusCode >= 400 {
		return "", c.classifyStatus(resp.StatusCode, body)
	}

	var pred replicatePrediction
	if err := json.Unmarshal(body, &pred); err != nil {
		return "", &Error{Backend: c.Name(), Class: FailureTransient,
			Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if pred.ID == "" {
		return "", &Error{Backend: c.Name(), Class: FailureFatal,
			Err: fmt.Errorf("no prediction id returned")}
	}

	return pred.ID, nil
}

func (c *ReplicateClient) pollResult(ctx context.Context, predictionID string) (string, error) {
	deadline := time.Now().Add(c.pollingTimeout)
	url := c.baseURL + "/predictions/" + predictionID

	for {
		if time.Now().After(deadline) {
			return "", &Error{Backend: c.Name(), Class: FailureTransient,
				Err: fmt.Errorf("polling timed out after %s", c.pollingTimeout)}
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiToken)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return "", &Error{Backend: c.Name(), Class: FailureTransient, Err: err}
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return "", &Error{Backend: c.Name(), Class: FailureTransient, Err: err}
		}
		if resp.StatusCode >= 400 {
			return "", c.classifyStatus(resp.StatusCode, body)
		}

		var pred replicatePrediction
		if err := json.Unmarshal(body, &pred); err != nil {
			return "", &Error{Backend: c.Name(), Class: FailureTransient,
				Err: fmt.Errorf("failed to decode response: %w", err)}
		}

		switch pred.Status {
		case "succeeded":
			return decodePredictionOutput(pred.Output, c.Name())
		case "failed":
			msg := pred.Error
			if msg == "" {
				msg = "unknown error"
			}
			return "", &Error{Backend: c.Name(), Class: FailureFatal,
				Err: fmt.Errorf("prediction failed: %s", msg)}
		case "canceled":
			return "", &Error{Backend: c.Name(), Class: FailureFatal,
				Err: fmt.Errorf("prediction was canceled")}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollingInterval):
		}
	}
}

func decodePredictionOutput(raw json.RawMessage, backend string) (string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0], nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return single, nil
	}

	return "", &Error{Backend: backend, Class: FailureFatal,
		Err: fmt.Errorf("unexpected output format: %s", string(raw))}
}

func (c *ReplicateClient) download(ctx context.Context, outputURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", outputURL, nil)
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
			Err: fmt.Errorf("failed to download output: status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Backend: c.Name(), Class: FailureTransient, Err: err}
	}

	contentType := strings.TrimSpace(strings.Split(resp.Header.Get("Content-Type"), ";")[0])
	if contentType == "" {
		contentType = "image/webp"
	}
	return &Result{Data: data, ContentType: contentType}, nil
}

func (c *ReplicateClient) classifyStatus(status int, body []byte) error {
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
