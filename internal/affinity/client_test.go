package affinity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/traingrid/internal/schema"
	"github.com/vk/traingrid/internal/strict"
)

func TestPredict_ReturnsOneAffinityPerMolecule(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "MKTAYIAK", req.ProteinSequence)

		affinities := make([]float64, len(req.Smiles))
		for i := range req.Smiles {
			affinities[i] = -7.5 - float64(i)
		}
		require.NoError(t, json.NewEncoder(w).Encode(predictResponse{Affinities: affinities}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, 0)
	got, err := client.Predict(context.Background(), "MKTAYIAK", []string{"CCO", "c1ccccc1"})
	require.NoError(t, err)
	require.Equal(t, []float64{-7.5, -8.5}, got)
}

func TestPredict_EmptyBatchSkipsTheNetwork(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1", time.Second, 0)
	got, err := client.Predict(context.Background(), "MKTAYIAK", nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPredict_RejectsOversizedBatch(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1", time.Second, 1)
	_, err := client.Predict(context.Background(), "MKTAYIAK", []string{"CCO", "CCC"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "exceeds the configured maximum")
}

func TestPredict_FailsOnServiceError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, 0)
	_, err := client.Predict(context.Background(), "MKTAYIAK", []string{"CCO"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 503")
	require.Contains(t, err.Error(), "model not loaded")
}

func TestPredict_FailsOnCountMismatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(predictResponse{Affinities: []float64{-7.5}}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, 0)
	_, err := client.Predict(context.Background(), "MKTAYIAK", []string{"CCO", "CCC"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "returned 1 affinities for 2 molecules")
}

func TestFromConfig_RequiresEndpoint(t *testing.T) {
	t.Parallel()

	node, err := schema.Default().Child("affinity")
	require.NoError(t, err)

	// The schema default for endpoint is Missing; building a client from an
	// unresolved tree must fail.
	_, err = FromConfig(node)
	require.Error(t, err)
	require.Contains(t, err.Error(), "never supplied")

	_, err = strict.Override(node, map[string]any{
		"endpoint":        "http://localhost:8000/predict",
		"timeout_seconds": 5,
	})
	require.NoError(t, err)

	client, err := FromConfig(node)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000/predict", client.endpoint)
	require.Equal(t, 5*time.Second, client.http.Timeout)
	require.Equal(t, 32, client.maxBatch)
}
