package core

// Sink is a destination for log records. Each sink carries its own minimum
// severity threshold: a record is written only when its level is greater
// than or equal to the threshold.
type Sink interface {
	// Emit writes the record to the sink's destination. Records below the
	// sink's threshold are dropped silently.
	Emit(record *Record)

	// Threshold reports the sink's minimum severity.
	Threshold() Level

	// Flush forces any buffered records to the destination.
	Flush() error

	// Close flushes and releases any resources held by the sink.
	Close() error
}
