package server

import (
	"github.com/gin-gonic/gin"
	"github.com/iceymoss/jobtrack/internal/conf"
	"github.com/iceymoss/jobtrack/internal/engine"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	engine  *gin.Engine
	service *engine.Service
}

func NewServer(cfg *conf.Config) *Server {
	service := engine.NewService(cfg.Data)

	router := gin.Default()
	router.Use(metricsMiddleware())

	s := &Server{engine: router, service: service}

	router.GET("/", s.root)
	router.GET("/health", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/jobs", s.listJobs)
	router.GET("/jobs/:job_id", s.getJob)
	router.POST("/jobs/:job_id/trigger", s.triggerJob)

	router.GET("/runs", s.listRuns)
	router.GET("/runs/:run_id", s.getRun)
	router.GET("/runs/job/:job_id", s.listRunsByJob)
	router.POST("/runs/:run_id/cancel", s.cancelRun)

	router.GET("/summary", s.summary)

	// 没有静态页面，404 一律返回 JSON
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "not found"})
	})

	return s
}

// Handler 暴露给 httptest 用
func (s *Server) Handler() *gin.Engine {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
