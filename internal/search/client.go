// Package search is a thin proxy client for the external semantic
// search service. Indexing and scoring happen entirely inside that
// service; this client only moves envelopes and queries across its
// narrow HTTP contract.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iksnae/cursor-archive/internal"
)

// Client talks to one semantic search service instance.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the service at baseURL. The timeout
// is generous because indexing embeds every message.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

// Request is a semantic search query.
type Request struct {
	Query      string  `json:"query"`
	TopK       int     `json:"top_k"`
	FilterType string  `json:"filter_type,omitempty"` // "chat" or "composer"
	MinScore   float64 `json:"min_score"`
}

// Result is one scored match, with the full conversation payload.
type Result struct {
	ConversationID    string                 `json:"conversation_id"`
	ConversationTitle string                 `json:"conversation_title"`
	MessageContent    string                 `json:"message_content"`
	MessageRole       string                 `json:"message_role"`
	SimilarityScore   float64                `json:"similarity_score"`
	Timestamp         int64                  `json:"timestamp"`
	Type              string                 `json:"type"`
	WorkspaceFolder   string                 `json:"workspace_folder,omitempty"`
	FullConversation  map[string]interface{} `json:"full_conversation,omitempty"`
}

// IndexStats reports what an indexing run ingested.
type IndexStats struct {
	Status               string `json:"status"`
	IndexedMessages      int    `json:"indexed_messages"`
	IndexedConversations int    `json:"indexed_conversations"`
}

// Health reports the service's readiness.
type Health struct {
	Status            string `json:"status"`
	EmbeddingsIndexed bool   `json:"embeddings_indexed"`
	ConversationCount int    `json:"conversation_count"`
}

type indexRequest struct {
	ExportData *internal.ExportEnvelope `json:"export_data"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Index pushes a previously assembled export envelope to the service.
func (c *Client) Index(ctx context.Context, envelope *internal.ExportEnvelope) (*IndexStats, error) {
	var stats IndexStats
	if err := c.post(ctx, "/index", indexRequest{ExportData: envelope}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Search runs a similarity query and returns scored matches.
func (c *Client) Search(ctx context.Context, req Request) ([]Result, error) {
	if req.TopK == 0 {
		req.TopK = 5
	}
	var results []Result
	if err := c.post(ctx, "/search", req, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Health checks whether the service is up and has an index.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var health Health
	if err := c.do(req, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// ClearIndex removes all indexed data from the service.
func (c *Client) ClearIndex(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/index", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, nil)
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("search service call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Detail != "" {
			return fmt.Errorf("search service error %d: %s", resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("search service error %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
