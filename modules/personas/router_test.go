package personas_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/personagen/modules/personas"
	"github.com/dmitrymomot/personagen/pkg/persona"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := personas.NewStore(nil, time.Minute,
		personas.WithGeneratorOptions(persona.WithSeed(42)))
	srv := httptest.NewServer(personas.New(store, nil).Router())
	t.Cleanup(srv.Close)
	return srv
}

type apiResponse struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, apiResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var parsed apiResponse
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	}
	return resp, parsed
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var sess struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &sess))
	require.NotEmpty(t, sess.ID)
	return sess.ID
}

func TestListStates(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/states", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var states []string
	require.NoError(t, json.Unmarshal(body.Data, &states))
	assert.Len(t, states, 50)
	assert.Contains(t, states, "Wyoming")
	assert.Equal(t, "Mixed", body.Meta["mixed"])
}

func TestGenerateFlow(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/sessions/" + id

	resp, body := doJSON(t, http.MethodPost, base+"/personas",
		map[string]any{"count": 5, "state": "Wyoming"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var batch []persona.Persona
	require.NoError(t, json.Unmarshal(body.Data, &batch))
	require.Len(t, batch, 5)
	for _, p := range batch {
		assert.Equal(t, "WY", p.State)
		assert.True(t, strings.HasPrefix(p.Phone, "(307) "))
	}
	assert.Equal(t, float64(5), body.Meta["count"])
	require.Contains(t, body.Meta, "report")

	// Batch is retained for listing.
	resp, body = doJSON(t, http.MethodGet, base+"/personas", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []persona.Persona
	require.NoError(t, json.Unmarshal(body.Data, &listed))
	assert.Equal(t, batch, listed)

	// Report reflects the lineage.
	resp, body = doJSON(t, http.MethodGet, base+"/report", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report persona.Report
	require.NoError(t, json.Unmarshal(body.Data, &report))
	assert.Equal(t, 5, report.TotalGenerated)
	assert.Equal(t, 5, report.UniqueEmails)

	// Reset starts a fresh lineage.
	resp, body = doJSON(t, http.MethodPost, base+"/reset", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body.Data, &report))
	assert.Zero(t, report.TotalGenerated)

	resp, body = doJSON(t, http.MethodPost, base+"/personas",
		map[string]any{"count": 1, "state": ""})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body.Data, &batch))
	assert.Equal(t, "P000001", batch[0].ID, "IDs restart after reset")
}

func TestGenerate_ContractViolations(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/sessions/" + id

	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"zero count", map[string]any{"count": 0}, http.StatusUnprocessableEntity, "invalid_count"},
		{"negative count", map[string]any{"count": -5}, http.StatusUnprocessableEntity, "invalid_count"},
		{"over limit", map[string]any{"count": 5001}, http.StatusUnprocessableEntity, "invalid_count"},
		{"unknown state", map[string]any{"count": 3, "state": "Atlantis"}, http.StatusUnprocessableEntity, "unknown_state"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, base+"/personas", tc.body)
			require.Equal(t, tc.status, resp.StatusCode)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}

	// A rejected request leaves the lineage untouched.
	resp, body := doJSON(t, http.MethodGet, base+"/report", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report persona.Report
	require.NoError(t, json.Unmarshal(body.Data, &report))
	assert.Zero(t, report.TotalGenerated)
}

func TestGenerate_MalformedBody(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/sessions/"+id+"/personas",
		strings.NewReader("{not json"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownSession(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/sessions/9e8cf1be-0000-4000-8000-000000000000/personas",
		"/sessions/not-a-uuid/report",
	} {
		resp, body := doJSON(t, http.MethodGet, srv.URL+path, nil)
		require.Equalf(t, http.StatusNotFound, resp.StatusCode, "path %s", path)
		require.NotNil(t, body.Error)
		assert.Equal(t, "session_not_found", body.Error.Code)
	}
}

func TestDeleteSession(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/sessions/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/sessions/"+id+"/report", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExport(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/sessions/" + id

	// Export before any batch is a conflict.
	resp, body := doJSON(t, http.MethodGet, base+"/export", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "no_batch", body.Error.Code)

	resp, _ = doJSON(t, http.MethodPost, base+"/personas",
		map[string]any{"count": 3, "state": "Vermont"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for format, contentType := range map[string]string{
		"csv":  "text/csv",
		"json": "application/json",
		"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	} {
		t.Run(format, func(t *testing.T) {
			resp, err := http.Get(fmt.Sprintf("%s/export?format=%s", base, format))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, contentType, resp.Header.Get("Content-Type"))
			assert.Contains(t, resp.Header.Get("Content-Disposition"), "personas_")
			assert.Contains(t, resp.Header.Get("Content-Disposition"), "."+format)
		})
	}

	resp, body = doJSON(t, http.MethodGet, base+"/export?format=pdf", nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "unsupported_format", body.Error.Code)
}
