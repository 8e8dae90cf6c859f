package suite

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	logs *bytes.Buffer
}

// New - returns a suite whose logger writes JSON records into memory.
func New(t *testing.T) *Suite {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &Suite{
		T:      t,
		Logger: logger,
		logs:   logs,
	}
}

// Records - decodes every log record written so far.
func (that *Suite) Records() []map[string]any {
	that.Helper()

	var records []map[string]any

	scanner := bufio.NewScanner(bytes.NewReader(that.logs.Bytes()))
	for scanner.Scan() {
		record := map[string]any{}
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			that.Fatalf("could not decode log record: %v", err)
		}
		records = append(records, record)
	}

	return records
}

// RecordsWithMsg - returns the log records with the given message.
func (that *Suite) RecordsWithMsg(msg string) []map[string]any {
	that.Helper()

	var matched []map[string]any
	for _, record := range that.Records() {
		if record[slog.MessageKey] == msg {
			matched = append(matched, record)
		}
	}

	return matched
}
