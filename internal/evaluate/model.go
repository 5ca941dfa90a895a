package evaluate

import (
	"time"

	"github.com/bayneri/attendance/internal/projector"
)

const SchemaVersion = "1.0"

type Summary struct {
	SchemaVersion string         `json:"schemaVersion"`
	Name          string         `json:"name"`
	Student       string         `json:"student,omitempty"`
	Term          string         `json:"term,omitempty"`
	GeneratedAt   time.Time      `json:"generatedAt"`
	Status        string         `json:"status"`
	Courses       []CourseResult `json:"courses"`
	Errors        []string       `json:"errors"`
}

type CourseResult struct {
	Name   string            `json:"name"`
	Query  projector.Query   `json:"query"`
	Status string            `json:"status"`
	Result *projector.Result `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}
