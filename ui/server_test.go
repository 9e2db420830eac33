package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roasdash/adapters/sample"
	"roasdash/app"
	"roasdash/internal"
	"roasdash/internal/config"
	"roasdash/internal/session"
)

func newTestServer() *Server {
	cfg := &config.Config{}
	cfg.Server.GinMode = "test"
	cfg.Server.Port = "0"

	sampleCfg := sample.DefaultConfig()
	sampleCfg.InfluencerCount = 5
	sampleCfg.PostCount = 10
	sampleCfg.TrackingSamples = 20

	logger := internal.NewDefaultLogger()
	service := app.NewDashboardService(session.NewStore(sampleCfg), logger)
	return NewServer(cfg, service, logger)
}

func doRequest(t *testing.T, srv *Server, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func multipartCSV(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	srv := newTestServer()

	w := doRequest(t, srv, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPerformance_SampleFallbackAndSessionHeader(t *testing.T) {
	srv := newTestServer()

	w := doRequest(t, srv, http.MethodGet, "/api/performance", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"), "every response must echo a session ID")

	var resp struct {
		SampleData bool              `json:"sample_data"`
		Rows       []json.RawMessage `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.SampleData)
	assert.NotEmpty(t, resp.Rows)
}

func TestUpload_ValidCSV(t *testing.T) {
	srv := newTestServer()

	csv := "influencer_id,name,category,gender,follower_count,platform,tier\nINF_001,Asha,Fitness,Female,50000,Instagram,Micro\n"
	body, contentType := multipartCSV(t, "influencers.csv", csv)

	w := doRequest(t, srv, http.MethodPost, "/api/upload/influencers", body, contentType)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		SessionID string `json:"session_id"`
		Dataset   string `json:"dataset"`
		Report    struct {
			RowsKept int `json:"rows_kept"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "influencers", resp.Dataset)
	assert.Equal(t, 1, resp.Report.RowsKept)
	assert.NotEmpty(t, resp.SessionID)
}

func TestUpload_SchemaFailure(t *testing.T) {
	srv := newTestServer()

	body, contentType := multipartCSV(t, "influencers.csv", "influencer_id,name\nINF_001,Asha\n")
	w := doRequest(t, srv, http.MethodPost, "/api/upload/influencers", body, contentType)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SCHEMA_INVALID", resp["code"])
	assert.Equal(t, "influencers", resp["dataset"])
	assert.NotEmpty(t, resp["session_id"])
}

func TestUpload_UnknownKind(t *testing.T) {
	srv := newTestServer()

	body, contentType := multipartCSV(t, "orders.csv", "a,b\n1,2\n")
	w := doRequest(t, srv, http.MethodPost, "/api/upload/orders", body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGroupings(t *testing.T) {
	srv := newTestServer()

	for _, key := range []string{"brand", "platform", "product"} {
		w := doRequest(t, srv, http.MethodGet, "/api/groupings/"+key, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, "grouping by %s", key)
	}

	w := doRequest(t, srv, http.MethodGet, "/api/groupings/color", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTemplates(t *testing.T) {
	srv := newTestServer()

	w := doRequest(t, srv, http.MethodGet, "/api/templates/influencers", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "influencers_template.csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "influencer_id,"))

	w = doRequest(t, srv, http.MethodGet, "/api/templates/orders", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSampleCSV(t *testing.T) {
	srv := newTestServer()

	w := doRequest(t, srv, http.MethodGet, "/api/sample/payouts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payouts_sample.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	// Header plus one payout per sample influencer
	assert.Len(t, lines, 1+5)
}

func TestIncremental(t *testing.T) {
	srv := newTestServer()

	w := doRequest(t, srv, http.MethodGet, "/api/incremental", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Lift struct {
			TestRevenue float64 `json:"test_revenue"`
		} `json:"lift"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.Lift.TestRevenue, 0.0, "sample data always contains test traffic")
}

func TestSessionContinuity(t *testing.T) {
	srv := newTestServer()

	csv := "influencer_id,name,category,gender,follower_count,platform,tier\nINF_001,Asha,Fitness,Female,50000,Instagram,Micro\n"
	body, contentType := multipartCSV(t, "influencers.csv", csv)
	w := doRequest(t, srv, http.MethodPost, "/api/upload/influencers", body, contentType)
	require.Equal(t, http.StatusOK, w.Code)
	sessionID := w.Header().Get("X-Session-ID")
	require.NotEmpty(t, sessionID)

	req := httptest.NewRequest(http.MethodGet, "/api/performance", nil)
	req.Header.Set("X-Session-ID", sessionID)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SampleData bool `json:"sample_data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.SampleData, "session with an upload must not serve sample data")
}
