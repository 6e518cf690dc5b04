package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ImportResponse reports the outcome of an e-Okul workbook import.
type ImportResponse struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// PenaltyCount is one row of the most-frequent-penalties table.
type PenaltyCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// GradeCount is one row of the incidents-per-grade distribution. It
// counts involvement rows, not distinct students.
type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// StatisticsResponse is the dashboard overview.
type StatisticsResponse struct {
	TotalIncidents       int            `json:"totalIncidents"`
	DecidedIncidents     int            `json:"decidedIncidents"`
	PendingIncidents     int            `json:"pendingIncidents"`
	PenaltyIncidentCount int            `json:"penaltyIncidentCount"`
	PenaltyRate          int            `json:"penaltyRate"`
	TopPenalties         []PenaltyCount `json:"topPenalties"`
	GradeDistribution    []GradeCount   `json:"gradeDistribution"`
}

// AITextResponse wraps a generated text. Fallback is set when the text
// is a fixed offline or failure message rather than model output.
type AITextResponse struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback,omitempty"`
}

// KeyValidationResponse reports whether a candidate API key works.
type KeyValidationResponse struct {
	Valid bool `json:"valid"`
}
