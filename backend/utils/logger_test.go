package utils

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LoggerConfig{Format: "JSON", Output: &buf})
	logger.SetOutput(&jsonLineWriter{
		out: &buf,
		now: func() time.Time { return time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC) },
	})

	logger.Printf("Batch %s moved to semester %d", "B1", 2)
	logger.Println(`quoted "value"`)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, map[string]string{
		"time": "2025-01-15T09:30:00Z",
		"app":  "smartscore",
		"msg":  "Batch B1 moved to semester 2",
	}, entry)

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, `quoted "value"`, entry["msg"])
}

func TestInitLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LoggerConfig{Output: &buf})

	logger.Print("Database ready")

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "[SmartScore] Database ready"), line)
	assert.False(t, strings.HasPrefix(line, "[SmartScore]"), line)
}
