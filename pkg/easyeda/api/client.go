// Package api fetches component CAD data and 3D model payloads from the
// EasyEDA web API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda"
)

const (
	defaultBaseURL  = "https://easyeda.com"
	defaultModelURL = "https://modules.easyeda.com"

	// The API serves payloads by editor version; this is the one the
	// endpoint expects.
	editorVersion = "6.4.19.5"

	// Opaque path segment of the STEP download endpoint.
	stepPath = "qAxj6KHrDKw4blvCG8QJPs7Y"

	// UserAgent identifies this tool to the API.
	UserAgent = "otparts/1.0"

	defaultTimeout = 30 * time.Second
	cacheSize      = 256
)

// Options configures a Client. The zero value selects the production
// endpoints and a 30 second timeout.
type Options struct {
	// BaseURL overrides the component API host, ModelURL the 3D model
	// host. Both default to the public EasyEDA endpoints.
	BaseURL  string
	ModelURL string
	Timeout  time.Duration
	// Logger receives request traces. Nil silences them.
	Logger *log.Logger
}

// Client is an EasyEDA API client. Component documents and model payloads
// are cached, so converting a board's worth of parts that share packages
// does not refetch.
type Client struct {
	http     *http.Client
	baseURL  string
	modelURL string
	logger   *log.Logger
	docs     *lru.Cache[string, *easyeda.Document]
	models   *lru.Cache[string, []byte]
}

// NewClient builds a client.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.ModelURL == "" {
		opts.ModelURL = defaultModelURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	docs, err := lru.New[string, *easyeda.Document](cacheSize)
	if err != nil {
		return nil, err
	}
	models, err := lru.New[string, []byte](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:     &http.Client{Timeout: opts.Timeout},
		baseURL:  opts.BaseURL,
		modelURL: opts.ModelURL,
		logger:   logger,
		docs:     docs,
		models:   models,
	}, nil
}

// envelope is the JSON wrapper around every component API response.
type envelope struct {
	Code    *int            `json:"code"`
	Success *bool           `json:"success"`
	Result  json.RawMessage `json:"result"`
}

// ComponentData fetches the CAD data document for one LCSC part number.
func (c *Client) ComponentData(ctx context.Context, id string) (*easyeda.Document, error) {
	if doc, ok := c.docs.Get(id); ok {
		c.logger.Printf("cache hit for %s", id)
		return doc, nil
	}

	// Accept-Encoding is left to the transport: setting it by hand would
	// turn off Go's transparent gzip decompression.
	url := fmt.Sprintf("%s/api/products/%s/components?version=%s", c.baseURL, id, editorVersion)
	body, err := c.get(ctx, url, map[string]string{
		"Accept": "application/json, text/javascript, */*; q=0.01",
	})
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", id, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("component %s: response envelope: %w", id, err)
	}
	if env.Success != nil && !*env.Success {
		if env.Code != nil {
			return nil, fmt.Errorf("component %s: api error code %d", id, *env.Code)
		}
		return nil, fmt.Errorf("component %s: api reported failure", id)
	}
	if len(env.Result) == 0 {
		return nil, fmt.Errorf("component %s: response has no result", id)
	}

	doc, err := easyeda.ParseDocument(env.Result)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", id, err)
	}
	c.docs.Add(id, doc)
	return doc, nil
}

// ModelMesh downloads the OBJ form of a 3D model.
func (c *Client) ModelMesh(ctx context.Context, uuid string) ([]byte, error) {
	return c.model(ctx, "obj", fmt.Sprintf("%s/3dmodel/%s", c.modelURL, uuid), uuid)
}

// ModelSolid downloads the STEP form of a 3D model.
func (c *Client) ModelSolid(ctx context.Context, uuid string) ([]byte, error) {
	return c.model(ctx, "step", fmt.Sprintf("%s/%s/%s", c.modelURL, stepPath, uuid), uuid)
}

func (c *Client) model(ctx context.Context, format, url, uuid string) ([]byte, error) {
	key := format + ":" + uuid
	if data, ok := c.models.Get(key); ok {
		c.logger.Printf("cache hit for model %s", key)
		return data, nil
	}
	data, err := c.get(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("model %s (%s): %w", uuid, format, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("model %s (%s): empty payload", uuid, format)
	}
	c.models.Add(key, data)
	return data, nil
}

func (c *Client) get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.Printf("GET %s", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		const max = 512
		if len(body) > max {
			body = body[:max]
		}
		return nil, fmt.Errorf("unexpected status %s: %s", resp.Status, body)
	}
	return io.ReadAll(resp.Body)
}
