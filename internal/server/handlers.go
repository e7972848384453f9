package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iceymoss/jobtrack/internal/engine"
	"github.com/iceymoss/jobtrack/pkg/errors"
	"github.com/iceymoss/jobtrack/pkg/models"
	"github.com/iceymoss/jobtrack/pkg/utils"
)

const apiVersion = "1.0.0"

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{
		Message: "Jobtrack Jobs API",
		Status:  "healthy",
		Version: apiVersion,
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: utils.FormatTimestamp(time.Now()),
	})
}

func (s *Server) listJobs(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.ListJobs())
}

func (s *Server) getJob(c *gin.Context) {
	jobID, ok := intParam(c, "job_id")
	if !ok {
		return
	}
	job, err := s.service.GetJob(jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) listRuns(c *gin.Context) {
	limit, ok := intQuery(c, "limit", engine.DefaultRunsLimit)
	if !ok {
		return
	}
	jobID, ok := intQuery(c, "job_id", 0)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.service.ListRuns(limit, c.Query("status"), jobID))
}

func (s *Server) getRun(c *gin.Context) {
	runID, ok := intParam(c, "run_id")
	if !ok {
		return
	}
	run, err := s.service.GetRun(runID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (s *Server) listRunsByJob(c *gin.Context) {
	jobID, ok := intParam(c, "job_id")
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", engine.DefaultJobRunsLimit)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.service.ListRunsByJob(jobID, limit))
}

func (s *Server) summary(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Summary())
}

func (s *Server) triggerJob(c *gin.Context) {
	jobID, ok := intParam(c, "job_id")
	if !ok {
		return
	}
	resp, err := s.service.TriggerJob(jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) cancelRun(c *gin.Context) {
	runID, ok := intParam(c, "run_id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.service.CancelRun(runID))
}

// intParam 解析路径参数，非整数直接回 400
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}

// intQuery 解析查询参数，缺省用默认值，非整数回 400
func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}

// respondError 带错误码的错误映射到对应 HTTP 状态码，其余一律 500
func respondError(c *gin.Context, err error) {
	if cm, ok := errors.FromError(err); ok {
		c.JSON(cm.HTTPStatus(), models.ErrorResponse{Error: cm.Msg})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
}
