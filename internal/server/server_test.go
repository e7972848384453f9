package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iceymoss/jobtrack/internal/conf"
	"github.com/iceymoss/jobtrack/internal/server"
	"github.com/iceymoss/jobtrack/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	gin.SetMode(gin.TestMode)
	return server.NewServer(&conf.Config{})
}

func doRequest(t *testing.T, srv *server.Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "响应不是合法 JSON: %s", w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.HealthResponse](t, w)
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestRoot(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.RootResponse](t, w)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
}

func TestListJobs(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/jobs")
	require.Equal(t, http.StatusOK, w.Code)

	jobs := decode[[]models.Job](t, w)
	assert.Len(t, jobs, 8)
}

func TestGetJobByID(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/jobs/101")
	require.Equal(t, http.StatusOK, w.Code)

	job := decode[models.Job](t, w)
	assert.Equal(t, "ETL_Sales_Daily", job.JobName)
}

func TestGetJobNotFound(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/jobs/999999")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "Job 999999 not found", resp.Error)
}

func TestGetJobBadID(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/jobs/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// /runs?limit=5&status=SUCCESS：最多 5 条且全是 SUCCESS
func TestListRunsFiltered(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/runs?limit=5&status=SUCCESS")
	require.Equal(t, http.StatusOK, w.Code)

	runs := decode[[]models.JobRun](t, w)
	assert.LessOrEqual(t, len(runs), 5)
	for _, run := range runs {
		assert.Equal(t, models.StatusSuccess, run.Status)
	}
}

func TestListRunsDefaultLimit(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/runs")
	require.Equal(t, http.StatusOK, w.Code)

	runs := decode[[]models.JobRun](t, w)
	assert.Len(t, runs, 20)
}

func TestGetRunNotFound(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/runs/999999")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "Run 999999 not found", resp.Error)
}

func TestListRunsByJob(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/runs/job/103?limit=3")
	require.Equal(t, http.StatusOK, w.Code)

	runs := decode[[]models.JobRun](t, w)
	assert.LessOrEqual(t, len(runs), 3)
	for _, run := range runs {
		assert.Equal(t, 103, run.JobID)
	}
}

func TestSummary(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/summary")
	require.Equal(t, http.StatusOK, w.Code)

	sum := decode[models.JobSummary](t, w)
	assert.Equal(t, sum.TotalJobs, sum.Running+sum.Success+sum.Failed+sum.Pending+sum.Cancelled)
	assert.GreaterOrEqual(t, sum.SuccessRate, 0.0)
	assert.LessOrEqual(t, sum.SuccessRate, 100.0)
}

func TestTriggerJob(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodPost, "/jobs/102/trigger")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.TriggerResponse](t, w)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Contains(t, resp.Message, "ML_Model_Training")
	assert.GreaterOrEqual(t, resp.RunID, 20000)
}

func TestTriggerJobNotFound(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodPost, "/jobs/999999/trigger")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// 既有契约：cancel 不校验 run_id 是否存在
func TestCancelRunAlwaysAccepted(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodPost, "/runs/424242/cancel")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.CancelResponse](t, w)
	assert.Equal(t, models.StatusCancelling, resp.Status)
	assert.Equal(t, "Run 424242 cancellation requested", resp.Message)
}

// 未匹配的路径返回 JSON 404，不能吐 HTML
func TestNoRouteReturnsJSON(t *testing.T) {
	srv := newTestServer()
	w := doRequest(t, srv, http.MethodGet, "/nope")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestMetricsExposed(t *testing.T) {
	srv := newTestServer()
	// 先打一个业务请求，确保计数器有样本
	doRequest(t, srv, http.MethodGet, "/health")

	w := doRequest(t, srv, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jobtrack_http_requests_total")
}
