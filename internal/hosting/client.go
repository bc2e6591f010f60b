package hosting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

const defaultEndpoint = "https://pic.in.th/api/1/upload"

// Client publishes encoded images to the external hosting API.
// The API key is injected at construction; a missing key fails each
// Upload call with ErrMissingAPIKey instead of preventing startup.
type Client struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
}

// Config describes the credentials and endpoint for the client.
type Config struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

func New(cfg Config) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     strings.TrimSpace(cfg.APIKey),
		endpoint:   endpoint,
	}
}

// UploadInput is one image to publish.
type UploadInput struct {
	Data     []byte
	MIME     string
	Filename string // "<title>.<ext>", used as the multipart filename
	Title    string
}

// Upload performs a single multipart POST to the hosting API and returns the
// public URL of the published image. There is no retry: any transport error,
// non-2xx status, or unrecognized success body is terminal for this call.
func (c *Client) Upload(ctx context.Context, in UploadInput) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="source"; filename=%q`, in.Filename))
	header.Set("Content-Type", in.MIME)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(in.Data); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.WriteField("title", in.Title); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	url, ok := extractURL(respBody)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedResponse, string(respBody))
	}
	return url, nil
}

// uploadResponse covers the response shapes the hosting API is known to
// return. The API is Chevereto-based; its documented shape nests the public
// URL under "image", but a flat "url" has been observed too.
type uploadResponse struct {
	Image struct {
		URL string `json:"url"`
	} `json:"image"`
	URL string `json:"url"`
}

// urlCandidates is the ordered list of places to look for the public URL in a
// success body. First non-empty wins.
var urlCandidates = []func(uploadResponse) string{
	func(r uploadResponse) string { return r.Image.URL },
	func(r uploadResponse) string { return r.URL },
}

func extractURL(body []byte) (string, bool) {
	var parsed uploadResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", false
	}
	for _, candidate := range urlCandidates {
		if url := candidate(parsed); url != "" {
			return url, true
		}
	}
	return "", false
}
