package core

import "time"

// Record is a single log record as handed to sinks.
type Record struct {
	// Timestamp is when the record was created.
	Timestamp time.Time

	// Name identifies the logger that produced the record.
	Name string

	// Level is the severity of the record.
	Level Level

	// Message is the fully rendered message text. A record carries exactly
	// one line; callers wanting one record per line must split beforehand.
	Message string
}
