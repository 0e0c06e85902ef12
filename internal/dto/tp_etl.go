package dto

// TPEtlSummaryQuery binds GET /tp-etl/summary. Only types are checked here;
// ranges and sort values are validated by the upstream. Nil means not sent.
type TPEtlSummaryQuery struct {
	Page      *int   `form:"page"`
	Limit     *int   `form:"limit"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// TPEtlUserCoursesQuery binds GET /tp-etl/user-courses.
type TPEtlUserCoursesQuery struct {
	UserID *int64 `form:"user_id" binding:"required"`
}

// TPEtlDetailQuery binds GET /tp-etl/detail.
type TPEtlDetailQuery struct {
	TPEtlSummaryQuery
	UserID   *int64 `form:"user_id"`
	CourseID *int64 `form:"course_id"`
}

// TPEtlDetailSummaryURI binds the path of GET /tp-etl/detail/:user_id/:course_id/summary.
type TPEtlDetailSummaryURI struct {
	UserID   int64 `uri:"user_id"`
	CourseID int64 `uri:"course_id"`
}

// TPEtlExportQuery binds GET /tp-etl/summary/export.
type TPEtlExportQuery struct {
	Format    string `form:"format" binding:"required,oneof=csv pdf"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
