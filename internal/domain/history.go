package domain

import "time"

// HistoryRecord is a single evaluated REPL line.
type HistoryRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Session   string    `json:"session"`
	Source    string    `json:"source"`
	Result    string    `json:"result"`
	IsError   bool      `json:"is_error"`
}
