// Package affinity provides a client for the external binding-affinity
// prediction service. The service scores candidate molecules (as SMILES
// strings) against a protein target and is consulted by the reward
// computation during training.
package affinity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vk/traingrid/internal/ctxlog"
	"github.com/vk/traingrid/internal/strict"
)

// Client calls a binding-affinity prediction service over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
	maxBatch int
}

// NewClient creates a Client for the given prediction endpoint. A zero
// timeout disables the client-side deadline; a zero maxBatch disables
// batching limits.
func NewClient(endpoint string, timeout time.Duration, maxBatch int) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		maxBatch: maxBatch,
	}
}

// FromConfig builds a Client from a resolved "affinity" config node. It
// fails when the endpoint was never supplied, so a tree still carrying
// Missing cannot silently reach the network layer.
func FromConfig(node *strict.Node) (*Client, error) {
	v, err := node.Get("endpoint")
	if err != nil {
		return nil, err
	}
	if strict.IsMissing(v) {
		return nil, errors.New("affinity.endpoint is required but was never supplied")
	}
	endpoint, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("affinity.endpoint must be a string, got %T", v)
	}

	timeout, err := floatField(node, "timeout_seconds")
	if err != nil {
		return nil, err
	}
	maxBatch, err := intField(node, "max_batch_size")
	if err != nil {
		return nil, err
	}

	return NewClient(endpoint, time.Duration(timeout*float64(time.Second)), maxBatch), nil
}

type predictRequest struct {
	ProteinSequence string   `json:"protein_sequence"`
	Smiles          []string `json:"smiles"`
}

type predictResponse struct {
	Affinities []float64 `json:"affinities"`
}

// Predict returns one predicted binding affinity per SMILES string, in the
// order supplied.
func (c *Client) Predict(ctx context.Context, proteinSequence string, smiles []string) ([]float64, error) {
	if len(smiles) == 0 {
		return nil, nil
	}
	if c.maxBatch > 0 && len(smiles) > c.maxBatch {
		return nil, fmt.Errorf("batch of %d molecules exceeds the configured maximum of %d", len(smiles), c.maxBatch)
	}

	body, err := json.Marshal(predictRequest{
		ProteinSequence: proteinSequence,
		Smiles:          smiles,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Requesting affinity predictions.", "endpoint", c.endpoint, "batch_size", len(smiles))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("prediction service returned status %d: %s", resp.StatusCode, snippet)
	}

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode prediction response: %w", err)
	}
	if len(decoded.Affinities) != len(smiles) {
		return nil, fmt.Errorf("prediction service returned %d affinities for %d molecules", len(decoded.Affinities), len(smiles))
	}

	return decoded.Affinities, nil
}

// floatField reads a numeric leaf, accepting the int or float representation
// an override file may have produced.
func floatField(node *strict.Node, name string) (float64, error) {
	v, err := node.Get(name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("affinity.%s must be a number, got %T", name, v)
	}
}

func intField(node *strict.Node, name string) (int, error) {
	f, err := floatField(node, name)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
