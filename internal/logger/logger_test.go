package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	t.Cleanup(func() {
		SetVerbose(false)
		SetColor(false)
		SetLevel(LevelDebug)
		SetOutput(os.Stderr)
		now = time.Now
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t)

	SetVerbose(false)
	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] line 1: 正正反\n"},
		{"info", Info, "[INFO] line 1: 正正反\n"},
		{"warn", Warn, "[WARN] line 1: 正正反\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.log("line %d: %s", 1, "正正反")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestQuietWhenNotVerbose(t *testing.T) {
	buf := capture(t)
	SetVerbose(false)

	Debug("x")
	Warn("y")
	Section("z")
	For("casting").Info("w")

	assert.Zero(t, buf.Len())
}

func TestSetLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelWarn)

	Debug("dropped")
	Info("dropped")
	Warn("trigram %s missing", "101")

	assert.Equal(t, "[WARN] trigram 101 missing\n", buf.String())
}

func TestSection(t *testing.T) {
	buf := capture(t)
	Section("Coin Cast")
	assert.Equal(t, "\n=== Coin Cast ===\n", buf.String())
}

func TestScope(t *testing.T) {
	buf := capture(t)
	log := For("casting")

	log.Debug("using seed %d", 42)
	log.Warn("bad")

	assert.Equal(t, "[DEBUG] casting: using seed 42\n[WARN] casting: bad\n", buf.String())
}

func TestScope_Timed(t *testing.T) {
	buf := capture(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	now = func() time.Time {
		calls++
		return start.Add(time.Duration(calls-1) * 1500 * time.Millisecond)
	}

	done := For("interpretation").Timed("chat")
	done()

	assert.Equal(t, "[DEBUG] interpretation: chat took 1.5s\n", buf.String())
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "?", Level(9).String())
}

func TestConcurrentAccess(t *testing.T) {
	capture(t)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			For("worker").Debug("concurrent %d", i)
			_ = IsVerbose()
		}()
	}
	wg.Wait()
}
