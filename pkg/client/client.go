package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iceymoss/jobtrack/pkg/models"
)

// Client Jobs API 的类型化客户端
// dashboard 前端的访问约定：10 秒超时、不重试、非 200 直接把服务端的错误信息原样抛给调用方
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Health GET /health
func (c *Client) Health(ctx context.Context) (models.HealthResponse, error) {
	var out models.HealthResponse
	err := c.do(ctx, http.MethodGet, "/health", &out)
	return out, err
}

// ListJobs GET /jobs
func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	err := c.do(ctx, http.MethodGet, "/jobs", &out)
	return out, err
}

// GetJob GET /jobs/{job_id}
func (c *Client) GetJob(ctx context.Context, jobID int) (models.Job, error) {
	var out models.Job
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", jobID), &out)
	return out, err
}

// ListRunsOptions GET /runs 的过滤条件，零值表示不带该参数
type ListRunsOptions struct {
	Limit  int
	Status string
	JobID  int
}

// ListRuns GET /runs
func (c *Client) ListRuns(ctx context.Context, opts ListRunsOptions) ([]models.JobRun, error) {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.JobID > 0 {
		q.Set("job_id", strconv.Itoa(opts.JobID))
	}
	path := "/runs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []models.JobRun
	err := c.do(ctx, http.MethodGet, path, &out)
	return out, err
}

// GetRun GET /runs/{run_id}
// 服务端每次请求都重新生成数据，上一次列表里的 run_id 这次可能 404
func (c *Client) GetRun(ctx context.Context, runID int) (models.JobRun, error) {
	var out models.JobRun
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/runs/%d", runID), &out)
	return out, err
}

// Summary GET /summary
func (c *Client) Summary(ctx context.Context) (models.JobSummary, error) {
	var out models.JobSummary
	err := c.do(ctx, http.MethodGet, "/summary", &out)
	return out, err
}

// ListRunsByJob GET /runs/job/{job_id}
func (c *Client) ListRunsByJob(ctx context.Context, jobID, limit int) ([]models.JobRun, error) {
	path := fmt.Sprintf("/runs/job/%d", jobID)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []models.JobRun
	err := c.do(ctx, http.MethodGet, path, &out)
	return out, err
}

// TriggerJob POST /jobs/{job_id}/trigger
func (c *Client) TriggerJob(ctx context.Context, jobID int) (models.TriggerResponse, error) {
	var out models.TriggerResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/jobs/%d/trigger", jobID), &out)
	return out, err
}

// CancelRun POST /runs/{run_id}/cancel
func (c *Client) CancelRun(ctx context.Context, runID int) (models.CancelResponse, error) {
	var out models.CancelResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/runs/%d/cancel", runID), &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("cannot connect to API server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr models.ErrorResponse
		if decErr := json.NewDecoder(resp.Body).Decode(&apiErr); decErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d for %s %s", resp.StatusCode, method, path)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
