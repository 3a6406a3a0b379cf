package models

// Report failure codes. All report failures are recoverable and surfaced as
// a ReportResult, never as a Go error.
const (
	ErrCodeInvalidAmount      = "INVALID_AMOUNT"
	ErrCodeMissionInactive    = "MISSION_INACTIVE"
	ErrCodeDailyLimitExceeded = "DAILY_LIMIT_EXCEEDED"
	ErrCodeInvalidCollection  = "INVALID_COLLECTION"
	ErrCodeMissionNotFound    = "MISSION_NOT_FOUND"
)

// ReportResult is the discriminated outcome of applying a report.
// On failure Code identifies the first validation that rejected the report
// and Message is suitable for direct display; the mission is unchanged.
// On success Mission carries the full updated mission value.
type ReportResult struct {
	Success   bool     `json:"success"`
	Code      string   `json:"code,omitempty"`
	Message   string   `json:"message"`
	Added     float64  `json:"added,omitempty"`
	NewCount  float64  `json:"newCount,omitempty"`
	Completed bool     `json:"completed,omitempty"`
	Mission   *Mission `json:"mission,omitempty"`
}

// Failure builds a failed result with the given code and message.
func Failure(code, message string) ReportResult {
	return ReportResult{Success: false, Code: code, Message: message}
}
