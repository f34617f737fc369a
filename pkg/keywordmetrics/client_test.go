package keywordmetrics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    string
		wantVolume int
		wantCPC    float64
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{
				"keyword": "remote work",
				"search_volume": 74000,
				"cpc": 2.35,
				"competition": 0.61,
				"suggestions": ["remote work jobs", "remote work tools"]
			}`,
			wantVolume: 74000,
			wantCPC:    2.35,
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error": "invalid api key"}`,
			wantErr: "unexpected status 401",
		},
		{
			name:    "malformed_response",
			status:  http.StatusOK,
			body:    `{invalid json`,
			wantErr: "unmarshal response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/keywords/lookup", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

				var req LookupRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "remote work", req.Keyword)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient("test-key", WithBaseURL(srv.URL))

			resp, err := client.Lookup(context.Background(), LookupRequest{Keyword: "remote work", Suggestions: 10})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantVolume, resp.SearchVolume)
			assert.InDelta(t, tt.wantCPC, resp.CPC, 0.001)
			assert.Len(t, resp.Suggestions, 2)
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()
	c := NewClient("my-key")
	hc := c.(*httpClient)
	assert.Equal(t, "my-key", hc.apiKey)
	assert.Equal(t, defaultBaseURL, hc.baseURL)
	assert.NotNil(t, hc.http)
}
