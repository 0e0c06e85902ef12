package upstream

// Upstream SAS paths.
const (
	PathHealth = "/health"

	PathSummaryStats = "/api/v1/summary/stats"

	PathETLStatus         = "/api/etl/status"
	PathETLLogs           = "/api/etl/logs"
	PathETLRunFull        = "/api/etl/run"
	PathETLRunIncremental = "/api/etl/run-incremental"
	PathETLClearStuck     = "/api/etl/clear-stuck"
	PathETLForceClear     = "/api/etl/force-clear"

	PathTPEtlSummary       = "/api/v1/tp-etl/summary"
	PathTPEtlUserCourses   = "/api/v1/tp-etl/user-courses"
	PathTPEtlDetail        = "/api/v1/tp-etl/detail"
	PathTPEtlDetailSummary = "/api/v1/tp-etl/detail/{user_id}/{course_id}/summary"
)
