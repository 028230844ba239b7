package sinks

import (
	"sync"

	"github.com/finlog/finlog/core"
)

// MemorySink stores log records in memory for testing purposes. Its
// threshold is the severity floor, so it admits everything by default.
type MemorySink struct {
	records   []core.Record
	mu        sync.RWMutex
	threshold core.Level
}

// NewMemorySink creates a memory sink that admits every record.
func NewMemorySink() *MemorySink {
	return &MemorySink{threshold: core.NotSetLevel}
}

// NewMemorySinkWithThreshold creates a memory sink with a minimum severity.
func NewMemorySinkWithThreshold(threshold core.Level) *MemorySink {
	return &MemorySink{threshold: threshold}
}

// Emit stores the record if it meets the sink's threshold.
func (m *MemorySink) Emit(record *core.Record) {
	if record.Level < m.threshold {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, *record)
}

// Threshold reports the sink's minimum severity.
func (m *MemorySink) Threshold() core.Level {
	return m.threshold
}

// Flush does nothing for a memory sink.
func (m *MemorySink) Flush() error {
	return nil
}

// Close does nothing for a memory sink.
func (m *MemorySink) Close() error {
	return nil
}

// Records returns a copy of all stored records.
func (m *MemorySink) Records() []core.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]core.Record, len(m.records))
	copy(result, m.records)
	return result
}

// Messages returns the message text of every stored record, in order.
func (m *MemorySink) Messages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	messages := make([]string, len(m.records))
	for i, r := range m.records {
		messages[i] = r.Message
	}
	return messages
}

// Count returns the number of stored records.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Clear removes all stored records.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = m.records[:0]
}

// LastRecord returns the most recent record, or nil when empty.
func (m *MemorySink) LastRecord() *core.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.records) == 0 {
		return nil
	}
	record := m.records[len(m.records)-1]
	return &record
}
