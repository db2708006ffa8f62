package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"
	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
)

// Client implements the SearchIndex interface for Elasticsearch operations.
type Client struct {
	es     *elasticsearch.Client
	logger *slog.Logger
}

// New creates a new Elasticsearch client, retrieving configuration from context.
func New(ctx context.Context) (*Client, error) {
	cfg := config.GetConfig(ctx)

	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.Elasticsearch.URL},
	}
	// Add authentication if credentials are provided
	if cfg.Elasticsearch.HasCredentials() {
		esCfg.Username = cfg.Elasticsearch.User
		esCfg.Password = cfg.Elasticsearch.Password
	}

	return connect(ctx, esCfg)
}

// NewWithURL creates a new Elasticsearch client with explicit URL and credentials.
// This constructor is primarily intended for testing purposes.
func NewWithURL(elasticsearchURL, username, password string) (*Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{elasticsearchURL},
	}
	// Add authentication if credentials are provided
	if username != "" && password != "" {
		esCfg.Username = username
		esCfg.Password = password
	}

	return connect(context.Background(), esCfg)
}

// connect creates the client and verifies the cluster answers
func connect(ctx context.Context, esCfg elasticsearch.Config) (*Client, error) {
	es, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	// Verify connection
	res, err := es.Info(es.Info.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch connection error: %s - %s", res.Status(), string(body))
	}

	logger := slog.Default().With("component", "elasticsearch")
	logger.Info("connected to elasticsearch", "url", esCfg.Addresses[0], "authenticated", esCfg.Username != "")

	return &Client{
		es:     es,
		logger: logger,
	}, nil
}

// BulkIndex indexes documents into the specified index using the Bulk API.
// Each document is indexed with its key as the document ID.
func (c *Client) BulkIndex(ctx context.Context, indexName string, docs []domain.Document) error {
	if len(docs) == 0 {
		c.logger.Info("no documents to index", "index", indexName)
		return nil
	}

	// Build bulk request body
	var buf bytes.Buffer
	for i, doc := range docs {
		key := doc.Key()
		if key == "" {
			return fmt.Errorf("document %d of %s has no key", i, indexName)
		}

		// Action metadata
		meta := map[string]any{
			"index": map[string]any{
				"_index": indexName,
				"_id":    key,
			},
		}
		metaJSON, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("failed to marshal bulk metadata for %s: %w", key, err)
		}

		// Document body
		docJSON, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document %s: %w", key, err)
		}

		// Write to buffer (each line must be newline-delimited)
		buf.Write(metaJSON)
		buf.WriteByte('\n')
		buf.Write(docJSON)
		buf.WriteByte('\n')
	}

	// Execute bulk request
	req := esapi.BulkRequest{
		Body:    bytes.NewReader(buf.Bytes()),
		Refresh: "true", // Make documents immediately available for search
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("bulk index error: %s - %s", res.Status(), string(body))
	}

	// Parse response to check for errors
	var bulkResponse struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			ID     string `json:"_id"`
			Status int    `json:"status"`
			Error  struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"error"`
		} `json:"items"`
	}

	if err := json.NewDecoder(res.Body).Decode(&bulkResponse); err != nil {
		return fmt.Errorf("failed to parse bulk response: %w", err)
	}

	if bulkResponse.Errors {
		// Collect error details
		var errorDetails []string
		for _, item := range bulkResponse.Items {
			for action, details := range item {
				if details.Status >= 400 {
					errorDetails = append(errorDetails, fmt.Sprintf(
						"%s failed for doc %s (status %d): %s - %s",
						action, details.ID, details.Status, details.Error.Type, details.Error.Reason,
					))
				}
			}
		}
		return fmt.Errorf("bulk index had errors: %s", strings.Join(errorDetails, "; "))
	}

	c.logger.Info("bulk indexed documents", "index", indexName, "count", len(docs))
	return nil
}

// DeleteIndex removes an index from Elasticsearch. A missing index is not an error.
func (c *Client) DeleteIndex(ctx context.Context, indexName string) error {
	req := esapi.IndicesDeleteRequest{
		Index: []string{indexName},
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("failed to delete index %s: %w", indexName, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		// 404 is acceptable - index already doesn't exist
		if res.StatusCode == http.StatusNotFound {
			c.logger.Debug("index does not exist", "index", indexName)
			return nil
		}

		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("delete index error: %s - %s", res.Status(), string(body))
	}

	c.logger.Info("deleted index", "index", indexName)
	return nil
}

// CreateIndex creates a new index with the specified mapping.
func (c *Client) CreateIndex(ctx context.Context, indexName string, mapping string) error {
	req := esapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(mapping),
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", indexName, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("create index error: %s - %s", res.Status(), string(body))
	}

	c.logger.Info("created index", "index", indexName)
	return nil
}

// Ping reports whether the cluster answers
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch ping error: %s", res.Status())
	}
	return nil
}
