package utils

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

const appName = "smartscore"

// LoggerConfig controls the application logger.
type LoggerConfig struct {
	// Format is "text" or "json".
	Format string
	Output io.Writer
	// EnableColors tints the text prefix on terminals.
	EnableColors bool
}

// InitLogger builds the logger shared by the request middleware, the services and the seeder.
// The json format writes one object per line: {"time", "app", "msg"}.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	if strings.EqualFold(cfg.Format, "json") {
		return log.New(&jsonLineWriter{out: cfg.Output, now: time.Now}, "", 0)
	}

	prefix := "[SmartScore] "
	if cfg.EnableColors {
		prefix = "\033[36m" + prefix + "\033[0m"
	}
	return log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC|log.Lmsgprefix)
}

type logLine struct {
	Time string `json:"time"`
	App  string `json:"app"`
	Msg  string `json:"msg"`
}

// jsonLineWriter wraps each message the logger emits into a JSON object.
type jsonLineWriter struct {
	out io.Writer
	now func() time.Time
}

func (w *jsonLineWriter) Write(p []byte) (int, error) {
	line, err := json.Marshal(logLine{
		Time: w.now().UTC().Format(time.RFC3339),
		App:  appName,
		Msg:  string(bytes.TrimRight(p, "\n")),
	})
	if err != nil {
		return 0, err
	}
	if _, err := w.out.Write(append(line, '\n')); err != nil {
		return 0, err
	}
	return len(p), nil
}
