package logger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// capture enables logging into a buffer for the duration of the test.
func capture(t *testing.T, on bool) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetOutput(buf)
	SetVerbose(on)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("record %d parsed", 3) }, "[DEBUG] record 3 parsed\n"},
		{"info", func() { Info("%d records", 42) }, "[INFO] 42 records\n"},
		{"warn", func() { Warn("watch: %s", "file removed") }, "[WARN] watch: file removed\n"},
		{"section", func() { Section("Polynomial Run") }, "\n=== Polynomial Run ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSilentWhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")
	Elapsed("hidden", time.Now())

	assert.Empty(t, buf.String())
}

func TestElapsed(t *testing.T) {
	buf := capture(t, true)

	Elapsed("run", time.Now().Add(-time.Second))

	assert.Regexp(t, `^\[DEBUG\] run took 1(\.\d+)?s\n$`, buf.String())
}

func TestConcurrentAccess(t *testing.T) {
	buf := capture(t, true)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Debug("concurrent %d", i)
		}()
		go func() {
			defer wg.Done()
			_ = IsVerbose()
		}()
	}
	wg.Wait()

	for i := range 10 {
		assert.Contains(t, buf.String(), fmt.Sprintf("concurrent %d", i))
	}
}
