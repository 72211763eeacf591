package server

import (
	"Setlist/playlist"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Strum355/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.InitSimpleLogger(&log.Config{Output: io.Discard})
	os.Exit(m.Run())
}

func newTestServer() *Server {
	return New(":0", playlist.NewManager(nil))
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestPlay(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		body     string
		expected string
	}{
		{`["addSong('A')", "addSong('B')", "undo()"]`, "[\"A\"]\n"},
		{`["addSong('A')","addSong('A')","undo()"]`, "[\"A\"]\n"},
		{`["undo()","addSong('X')"]`, "[\"X\"]\n"},
		{`[]`, "[]\n"},
		{"", "[]\n"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/playlist", strings.NewReader(tt.body))
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tt.expected, rec.Body.String(), tt.body)
	}
}

func TestPlay_WrongMethod(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/playlist", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer()
	s.Handler().ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodPost, "/playlist", strings.NewReader(`["addSong('A')"]`)))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `setlist_runs_total{source="http"}`)
}

func TestPlay_BodyTooLarge(t *testing.T) {
	s := newTestServer()
	body := "[" + strings.Repeat(`"addSong('A')", `, maxBodyBytes/16+1) + `"undo()"]`
	require.Greater(t, len(body), maxBodyBytes)

	req := httptest.NewRequest(http.MethodPost, "/playlist", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"A"`)
}

func TestPlay_BodyAtLimit(t *testing.T) {
	s := newTestServer()
	adds := (maxBodyBytes - 16) / 16
	body := "[" + strings.Repeat(`"addSong('A')", `, adds) + `"undo()"]`
	require.LessOrEqual(t, len(body), maxBodyBytes)

	req := httptest.NewRequest(http.MethodPost, "/playlist", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, adds-1, strings.Count(rec.Body.String(), `"A"`))
}

func TestPlay_FirstLineOnly(t *testing.T) {
	s := newTestServer()
	body := "[\"addSong('A')\", \"addSong('B')\"]\r\n[\"addSong('C')\"]\n"

	req := httptest.NewRequest(http.MethodPost, "/playlist", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[\"A\", \"B\"]\n", rec.Body.String())
}
