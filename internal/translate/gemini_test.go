package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *Gemini {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewGemini(context.Background(), "g-test", Options{BaseURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return g
}

func TestGemini_Translate(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, DefaultGeminiModel+":generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"` + "`df -h`" + `"}]}}]}`))
	})

	cmd, err := g.Translate(context.Background(), "show me disk usage")
	require.NoError(t, err)
	assert.Equal(t, "df -h", cmd)
}

func TestGemini_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   result.Code
	}{
		{"unauthorized", http.StatusUnauthorized, result.CodeTranslationAuthFailure},
		{"rate limited", http.StatusTooManyRequests, result.CodeTranslationRateLimited},
		{"server error", http.StatusInternalServerError, result.CodeTranslationNetworkFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGemini(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprintf(w, `{"error":{"code":%d,"message":"nope","status":"ERR"}}`, tt.status)
			})

			_, err := g.Translate(context.Background(), "list all files")
			require.Error(t, err)
			assert.Equal(t, tt.want, result.CodeOf(err))
		})
	}
}

func TestGemini_EmptyAnswer(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := g.Translate(context.Background(), "show me nothing")
	require.Error(t, err)
	assert.Equal(t, result.CodeTranslationMalformedResponse, result.CodeOf(err))
}
