package site

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/devcircle/hub/pkg/data"
)

// DefaultBaseURL is the public site. Overridable with --api / HUB_API_BASE_URL.
const DefaultBaseURL = "https://devcircle.org"

// Wire types mirror the API's field names exactly; unknown fields are
// ignored, missing fields decode to "".
type demoRecord struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	LiveDemoURL   string `json:"liveDemoUrl"`
	SourceCodeURL string `json:"sourceCodeUrl"`
}

func (d demoRecord) toDemo() data.Demo {
	return data.Demo{
		Name:          d.Name,
		Category:      d.Category,
		LiveDemoURL:   d.LiveDemoURL,
		SourceCodeURL: d.SourceCodeURL,
	}
}

type resourceRecord struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

func (r resourceRecord) toResource() data.Resource {
	return data.Resource{Name: r.Name, Category: r.Category, URL: r.URL}
}

type presentationRecord struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Author   string `json:"author"`
	URL      string `json:"url"`
}

func (p presentationRecord) toPresentation() data.Presentation {
	return data.Presentation{Name: p.Name, Category: p.Category, Author: p.Author, URL: p.URL}
}

type Client struct {
	api     *http.Client
	baseURL string
	log     *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{api: http.DefaultClient, baseURL: baseURL, log: log}
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", c.baseURL, path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.api.Do(req)
	if err != nil {
		c.log.Warn("fetch failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("fetch failed", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("get %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		c.log.Warn("fetch decode failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

func (c *Client) Demos(ctx context.Context) ([]data.Demo, error) {
	var envelope struct {
		Data []demoRecord `json:"data"`
	}
	if err := c.get(ctx, "/api/demos", &envelope); err != nil {
		return nil, err
	}
	out := make([]data.Demo, len(envelope.Data))
	for i, rec := range envelope.Data {
		out[i] = rec.toDemo()
	}
	return out, nil
}

func (c *Client) Resources(ctx context.Context) ([]data.Resource, error) {
	var envelope struct {
		Data []resourceRecord `json:"data"`
	}
	if err := c.get(ctx, "/api/resources", &envelope); err != nil {
		return nil, err
	}
	out := make([]data.Resource, len(envelope.Data))
	for i, rec := range envelope.Data {
		out[i] = rec.toResource()
	}
	return out, nil
}

func (c *Client) Presentations(ctx context.Context) ([]data.Presentation, error) {
	var envelope struct {
		Data []presentationRecord `json:"data"`
	}
	if err := c.get(ctx, "/api/presentations", &envelope); err != nil {
		return nil, err
	}
	out := make([]data.Presentation, len(envelope.Data))
	for i, rec := range envelope.Data {
		out[i] = rec.toPresentation()
	}
	return out, nil
}
