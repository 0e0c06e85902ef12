package models

// ETLStatus is the upstream ETL process status. Its fields are owned upstream and kept verbatim.
type ETLStatus map[string]interface{}

// State returns the process state when the upstream exposes one under "status" or "state",
// looking into a nested "data" object as well.
func (s ETLStatus) State() string {
	for _, key := range []string{"status", "state"} {
		if v, ok := s[key].(string); ok {
			return v
		}
	}
	if nested, ok := s["data"].(map[string]interface{}); ok {
		return ETLStatus(nested).State()
	}
	return ""
}

// ETLLog is a single upstream ETL log entry.
type ETLLog map[string]interface{}

// ETLLogsResponse is the nested envelope returned by the ETL logs endpoint.
// Data and Logs are pointers so a missing field can be told apart from an empty list.
type ETLLogsResponse struct {
	Data *ETLLogsData `json:"data"`
}

// ETLLogsData holds the log page.
type ETLLogsData struct {
	Logs  *[]ETLLog `json:"logs"`
	Total int       `json:"total,omitempty"`
}

// ETLAction names an operator-triggered ETL control call.
type ETLAction string

const (
	ETLActionFull        ETLAction = "full"
	ETLActionIncremental ETLAction = "incremental"
	ETLActionClearStuck  ETLAction = "clear_stuck"
	ETLActionForceClear  ETLAction = "force_clear"
)

// ETLActionOutcome records whether the upstream accepted the trigger.
type ETLActionOutcome string

const (
	ETLActionSucceeded ETLActionOutcome = "success"
	ETLActionFailed    ETLActionOutcome = "failed"
)
