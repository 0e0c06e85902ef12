package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/monev-api/internal/models"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Stats   *StatsHandler
	ETL     *ETLHandler
	TPEtl   *TPEtlHandler
	Export  *ExportHandler
	Metrics *MetricsHandler
}

// TriggerGuard returns middleware placed in front of one ETL control route.
type TriggerGuard func(scope string) gin.HandlerFunc

// Register mounts the operational routes at the root and the dashboard API under prefix.
func Register(r *gin.Engine, prefix string, h Handlers, guard TriggerGuard) {
	if guard == nil {
		guard = func(string) gin.HandlerFunc { return func(c *gin.Context) { c.Next() } }
	}

	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		r.GET("/metrics", h.Metrics.Prometheus)
	}

	api := r.Group(prefix)

	if h.Stats != nil {
		api.GET("/sas/summary/stats", h.Stats.Summary)
	}

	if h.ETL != nil {
		etl := api.Group("/etl")
		etl.GET("/status", h.ETL.Status)
		etl.GET("/logs", h.ETL.Logs)
		etl.GET("/actions", h.ETL.Actions)
		etl.POST("/run/full", guard(string(models.ETLActionFull)), h.ETL.RunFull)
		etl.POST("/run/incremental", guard(string(models.ETLActionIncremental)), h.ETL.RunIncremental)
		etl.POST("/clear-stuck", guard(string(models.ETLActionClearStuck)), h.ETL.ClearStuck)
		etl.POST("/force-clear", guard(string(models.ETLActionForceClear)), h.ETL.ForceClear)
	}

	tp := api.Group("/tp-etl")
	if h.TPEtl != nil {
		tp.GET("/summary", h.TPEtl.Summary)
		tp.GET("/user-courses", h.TPEtl.UserCourses)
		tp.GET("/detail", h.TPEtl.Detail)
		tp.GET("/detail/:user_id/:course_id/summary", h.TPEtl.DetailSummary)
	}
	if h.Export != nil {
		tp.GET("/summary/export", h.Export.TPSummary)
	}
}
