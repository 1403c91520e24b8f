package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestKhaltiLookupCompleted(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody LookupRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":         "Completed",
			"transaction_id": "txn-42",
			"total_amount":   150000,
		})
	}))
	defer srv.Close()

	client := NewKhaltiClient(srv.URL, "test-secret", zap.NewNop())
	res, err := client.Lookup(context.Background(), LookupRequest{Token: "tok-1", Amount: 150000})
	require.NoError(t, err)

	assert.Equal(t, "Key test-secret", gotAuth)
	assert.Equal(t, "/api/v2/epayment/lookup/", gotPath)
	assert.Equal(t, "tok-1", gotBody.Token)

	assert.True(t, res.Verified())
	assert.Equal(t, "txn-42", res.TransactionID)
	assert.Equal(t, "Completed", res.Status)
}

func TestKhaltiLookupNotVerified(t *testing.T) {
	for _, status := range []string{"Pending", "Expired", "User canceled", "Refunded"} {
		t.Run(status, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"status": status})
			}))
			defer srv.Close()

			client := NewKhaltiClient(srv.URL, "test-secret", zap.NewNop())
			res, err := client.Lookup(context.Background(), LookupRequest{Token: "tok-1"})
			require.NoError(t, err)
			assert.False(t, res.Verified())
			assert.Equal(t, status, res.Status)
		})
	}
}

func TestKhaltiLookupGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid token"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewKhaltiClient(srv.URL, "test-secret", zap.NewNop())
	res, err := client.Lookup(context.Background(), LookupRequest{Token: "bad"})
	assert.Nil(t, res)
	assert.ErrorContains(t, err, "status 400")
}

func TestKhaltiLookupUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewKhaltiClient(srv.URL, "test-secret", zap.NewNop())
	res, err := client.Lookup(context.Background(), LookupRequest{Token: "tok-1"})
	assert.Nil(t, res)
	assert.Error(t, err)
}
