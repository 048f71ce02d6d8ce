// Package ocr talks to the external OCR endpoint that turns report page
// images into plain text.
package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEndpoint = "https://api.ocr.space/parse/image"
	defaultLanguage = "eng"

	// defaultEngine selects the engine tuned for structured documents;
	// engine 1 mangles table alignment badly enough to break column
	// detection downstream.
	defaultEngine = 2

	// defaultRequestTimeout aborts the HTTP call itself. It sits below the
	// orchestrator's per-image deadline so that in practice this is the
	// timeout that fires.
	defaultRequestTimeout = 12 * time.Second
)

type Config struct {
	Endpoint       string        `mapstructure:"endpoint"`
	APIKey         string        `mapstructure:"api_key"`
	Language       string        `mapstructure:"language"`
	Engine         int           `mapstructure:"engine"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Client recognizes the text on a single image.
type Client interface {
	Recognize(ctx context.Context, imageURL string) (string, error)
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	if cfg.Engine == 0 {
		cfg.Engine = defaultEngine
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	return &httpClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// parseResponse is the subset of the OCR service's JSON reply the engine
// cares about. ErrorMessage is a string or an array depending on the failure,
// so it stays raw.
type parseResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	OCRExitCode           int             `json:"OCRExitCode"`
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          json.RawMessage `json:"ErrorMessage"`
}

func (c *httpClient) Recognize(ctx context.Context, imageURL string) (string, error) {
	form := url.Values{}
	form.Set("url", imageURL)
	form.Set("apikey", c.cfg.APIKey)
	form.Set("language", c.cfg.Language)
	form.Set("OCREngine", strconv.Itoa(c.cfg.Engine))
	form.Set("isTable", "true")
	form.Set("scale", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building ocr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("ocr request returned status %d", resp.StatusCode)
	}

	var parsed parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding ocr response: %w", err)
	}

	// Exit code 1 is a clean parse; everything else is treated as a failed
	// image, including partial results, since a half-read table misleads the
	// column detector more than an empty one.
	if parsed.IsErroredOnProcessing || parsed.OCRExitCode != 1 {
		return "", fmt.Errorf("ocr processing failed: exit code %d, message %s",
			parsed.OCRExitCode, string(parsed.ErrorMessage))
	}
	if len(parsed.ParsedResults) == 0 {
		return "", nil
	}
	return parsed.ParsedResults[0].ParsedText, nil
}
