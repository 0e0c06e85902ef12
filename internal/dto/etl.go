package dto

// ETLLogsQuery binds GET /etl/logs. Values are forwarded as given.
type ETLLogsQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ETLActionsQuery binds GET /etl/actions.
type ETLActionsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ETLTriggerResponse wraps the upstream reply of a control call.
type ETLTriggerResponse struct {
	Action   string      `json:"action"`
	Upstream interface{} `json:"upstream,omitempty"`
}

// ETLLogsResponse is the local envelope payload for GET /etl/logs.
type ETLLogsResponse struct {
	Logs   interface{} `json:"logs"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
