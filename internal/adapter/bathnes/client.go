// Package bathnes fetches bin collection schedules from the Bath & North East
// Somerset Council bins API.
package bathnes

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"bin-reminder/internal/domain/model"
	"bin-reminder/internal/domain/ports"
)

const (
	// DefaultBaseURL is the route lookup endpoint; the UPRN and a trailing
	// "/true" are appended per request.
	DefaultBaseURL = "https://www.bathnes.gov.uk/webapi/api/BinsAPI/v2/getbartecroute"

	userAgent     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
	errBodyLimit  = 4096
	errSnippetLen = 200
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// InsecureTLS disables certificate verification on this client only.
	// The council's certificate chain is not trusted by every platform store.
	InsecureTLS bool
}

// Client implements ScheduleProvider against the council endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.ScheduleProvider = (*Client)(nil)

// New creates a new council API client.
func New(opts Options, logger ports.Logger) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // scoped to this endpoint
		if logger != nil {
			logger.Warn(context.Background(), "tls verification disabled for schedule endpoint", "base_url", base)
		}
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// FetchSchedule retrieves the next collection dates for the given UPRN.
func (c *Client) FetchSchedule(ctx context.Context, uprn string) (model.ScheduleResponse, error) {
	uprn = strings.TrimSpace(uprn)
	if uprn == "" {
		return nil, errors.New("uprn is empty")
	}

	endpoint := fmt.Sprintf("%s/%s/true", c.baseURL, url.PathEscape(uprn))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, errorSnippet(resp.Header.Get("Content-Type"), data))
	}

	var payload model.ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if payload == nil {
		return nil, errors.New("decode response: empty payload")
	}

	if c.logger != nil {
		c.logger.Info(ctx, "fetched collection schedule", "uprn", uprn, "keys", len(payload))
	}
	return payload, nil
}

func errorSnippet(contentType string, body []byte) string {
	text := string(body)
	if strings.Contains(strings.ToLower(contentType), "html") {
		text = htmlToText(text)
	}
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > errSnippetLen {
		text = text[:errSnippetLen] + "..."
	}
	return text
}

func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}
	if node.Type == html.TextNode {
		builder.WriteString(node.Data)
		builder.WriteRune(' ')
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}
