package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	channelRepo "querywizard/internal/modules/channel/repository"
	channelService "querywizard/internal/modules/channel/service"
	queryService "querywizard/internal/modules/query/service"
	"querywizard/internal/shared/config"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	repo, err := channelRepo.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{HTTPPort: "8080", AppEnv: config.AppEnvTesting}
	server := New(cfg, channelService.New(repo), queryService.New())
	return server.Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	handler := newTestServer(t)
	rec := doRequest(t, handler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestChannelLifecycle(t *testing.T) {
	handler := newTestServer(t)

	// Starts empty
	rec := doRequest(t, handler, http.MethodGet, "/api/channels", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"channels":[]}`, rec.Body.String())

	// Add with a leading hash, stored normalized
	rec = doRequest(t, handler, http.MethodPost, "/api/channels", `{"name":"#general"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Channel 'general' added", decodeBody(t, rec)["message"])

	rec = doRequest(t, handler, http.MethodPost, "/api/channels", `{"name":"deployments"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Listed sorted
	rec = doRequest(t, handler, http.MethodGet, "/api/channels", "")
	assert.JSONEq(t, `{"channels":["deployments","general"]}`, rec.Body.String())

	// Rename
	rec = doRequest(t, handler, http.MethodPut, "/api/channels/general", `{"name":"announcements"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Delete
	rec = doRequest(t, handler, http.MethodDelete, "/api/channels/deployments", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/channels", "")
	assert.JSONEq(t, `{"channels":["announcements"]}`, rec.Body.String())
}

func TestChannelErrorStatuses(t *testing.T) {
	handler := newTestServer(t)
	rec := doRequest(t, handler, http.MethodPost, "/api/channels", `{"name":"general"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doRequest(t, handler, http.MethodPost, "/api/channels", `{"name":"random"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "add empty name", method: http.MethodPost, path: "/api/channels", body: `{"name":"  "}`, wantStatus: http.StatusBadRequest},
		{name: "add lone hash", method: http.MethodPost, path: "/api/channels", body: `{"name":"#"}`, wantStatus: http.StatusBadRequest},
		{name: "add duplicate", method: http.MethodPost, path: "/api/channels", body: `{"name":"general"}`, wantStatus: http.StatusConflict},
		{name: "add malformed body", method: http.MethodPost, path: "/api/channels", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "delete missing", method: http.MethodDelete, path: "/api/channels/missing", body: "", wantStatus: http.StatusNotFound},
		{name: "rename missing", method: http.MethodPut, path: "/api/channels/missing", body: `{"name":"whatever"}`, wantStatus: http.StatusNotFound},
		{name: "rename to duplicate", method: http.MethodPut, path: "/api/channels/general", body: `{"name":"#random"}`, wantStatus: http.StatusConflict},
		{name: "rename to empty", method: http.MethodPut, path: "/api/channels/general", body: `{"name":"#"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, handler, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus >= http.StatusBadRequest {
				assert.Contains(t, decodeBody(t, rec), "error")
			}
		})
	}
}

func TestBuildQueryEndpoint(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "full selection",
			body: `{"channel":"eng","from_user":"bob","file_type":"PDF","keywords":"deploy"}`,
			want: "in:#eng from:@bob has:pdf deploy",
		},
		{
			name: "empty selection",
			body: `{}`,
			want: "",
		},
		{
			name: "during today",
			body: `{"dates":{"enabled":true,"mode":"during","during":{"kind":"today"}}}`,
			want: "during:today",
		},
		{
			name: "range with only end in month format",
			body: `{"dates":{"enabled":true,"mode":"range","end":{"kind":"calendar","date":"2024-03-01T00:00:00Z","format":"month"}}}`,
			want: "before:March",
		},
		{
			name: "disabled dates suppressed",
			body: `{"dates":{"enabled":false,"mode":"range","start":{"kind":"today"}}}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, handler, http.MethodPost, "/api/query", tt.body)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, decodeBody(t, rec)["query"])
		})
	}
}

func TestBuildQueryMalformedBody(t *testing.T) {
	handler := newTestServer(t)
	rec := doRequest(t, handler, http.MethodPost, "/api/query", `{"channel":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRootServesInstructions(t *testing.T) {
	handler := newTestServer(t)
	rec := doRequest(t, handler, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Slack Search Query Wizard")
}
