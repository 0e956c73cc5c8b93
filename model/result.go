package model

// Result is the envelope printed by the query command
type Result struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source,omitempty"`
}
