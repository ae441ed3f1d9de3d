package addresslookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"operations_backend/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

type testConfig struct {
	baseURL string
	timeout time.Duration
}

func (c testConfig) GetAddressAPIBaseURL() string        { return c.baseURL }
func (c testConfig) GetAddressAPIKey() string            { return testAPIKey }
func (c testConfig) GetAddressAPITimeout() time.Duration { return c.timeout }

// newTestServer answers GET /eircode/{code} only when the API key matches.
func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.Header.Get("x-api-key") != testAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasPrefix(r.URL.Path, "/eircode/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *Client {
	return NewClient(testConfig{baseURL: baseURL}, logger.Discard())
}

func TestLookupFound(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"id":1,"eirCode":"EIRCODE","street":"Street 1"}`)

	result, err := newTestClient(srv.URL).Lookup(context.Background(), "EIRCODE")
	require.NoError(t, err)
	assert.Equal(t, Result{ID: 1, EirCode: "EIRCODE", Street: "Street 1"}, result)
}

func TestLookupRequestShape(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotKey = r.Header.Get("x-api-key")
		_, _ = w.Write([]byte(`{"id":3}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL+"/").Lookup(context.Background(), "D02 X285")
	require.NoError(t, err)
	assert.Equal(t, "/eircode/D02%20X285", gotPath)
	assert.Equal(t, testAPIKey, gotKey)
}

func TestLookupNotFound(t *testing.T) {
	for name, body := range map[string]string{
		"empty object": `{}`,
		"zero id":      `{"id":0,"eirCode":"","street":""}`,
		"null":         `null`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, body)

			_, err := newTestClient(srv.URL).Lookup(context.Background(), "EIRCODE")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLookupUnavailable(t *testing.T) {
	t.Run("err: upstream 500", func(t *testing.T) {
		srv := newTestServer(t, http.StatusInternalServerError, `{"id":2}`)

		_, err := newTestClient(srv.URL).Lookup(context.Background(), "EIRCODE")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("err: malformed body", func(t *testing.T) {
		srv := newTestServer(t, http.StatusOK, `{"id":`)

		_, err := newTestClient(srv.URL).Lookup(context.Background(), "EIRCODE")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("err: unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := newTestClient(url).Lookup(context.Background(), "EIRCODE")
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.False(t, errors.Is(err, ErrNotFound))
	})

	t.Run("err: timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer srv.Close()

		client := NewClient(testConfig{baseURL: srv.URL, timeout: 20 * time.Millisecond}, logger.Discard())
		_, err := client.Lookup(context.Background(), "EIRCODE")
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
