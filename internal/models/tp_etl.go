package models

// TPEtlSummaryRow is one teacher row of the teacher-performance ETL summary.
type TPEtlSummaryRow struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	Username         string  `json:"username"`
	Firstname        string  `json:"firstname"`
	Lastname         string  `json:"lastname"`
	Email            string  `json:"email"`
	TotalCourses     int64   `json:"total_courses"`
	TotalActivities  int64   `json:"total_activities"`
	TotalLogins      int64   `json:"total_logins"`
	TotalGradedItems int64   `json:"total_graded_items"`
	AverageGrade     float64 `json:"average_grade"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// FullName joins first and last name.
func (r TPEtlSummaryRow) FullName() string {
	switch {
	case r.Firstname == "":
		return r.Lastname
	case r.Lastname == "":
		return r.Firstname
	default:
		return r.Firstname + " " + r.Lastname
	}
}

// TPEtlUserCourse lists a course a teacher is active in.
type TPEtlUserCourse struct {
	UserID          int64  `json:"user_id"`
	CourseID        int64  `json:"course_id"`
	CourseName      string `json:"course_name"`
	CourseShortname string `json:"course_shortname"`
	TotalActivities int64  `json:"total_activities"`
}

// TPEtlDetailRow is a single activity record for a (user, course) pair.
type TPEtlDetailRow struct {
	ID           int64    `json:"id"`
	UserID       int64    `json:"user_id"`
	CourseID     int64    `json:"course_id"`
	ActivityType string   `json:"activity_type"`
	ActivityName string   `json:"activity_name"`
	Action       string   `json:"action"`
	Grade        *float64 `json:"grade"`
	CreatedAt    string   `json:"created_at"`
}

// TPEtlDetailSummary aggregates a teacher's activity within one course.
type TPEtlDetailSummary struct {
	UserID           int64            `json:"user_id"`
	CourseID         int64            `json:"course_id"`
	CourseName       string           `json:"course_name"`
	TotalActivities  int64            `json:"total_activities"`
	TotalLogins      int64            `json:"total_logins"`
	TotalGradedItems int64            `json:"total_graded_items"`
	AverageGrade     float64          `json:"average_grade"`
	ActivityCounts   map[string]int64 `json:"activity_counts"`
	LastActivityAt   string           `json:"last_activity_at"`
}
