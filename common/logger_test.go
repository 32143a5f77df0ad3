package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesSeverityTaggedLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewLogger(logPath, 10, 7)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer logger.Close()

	logger.Debug("diagnostic %d", 1)
	logger.Info("informational")
	logger.Warning("warning")
	logger.Error("failure: %v", os.ErrNotExist)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"[DEBUG] diagnostic 1",
		"[INFO] informational",
		"[WARNING] warning",
		"[ERROR] failure",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("log is missing %q\nlog content:\n%s", want, content)
		}
	}
}

func TestLoggerCreatesLogDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "log", "app.log")

	logger, err := NewLogger(logPath, 10, 7)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer logger.Close()

	logger.Info("first line")

	if !FileExists(logPath) {
		t.Error("log file was not created in the nested directory")
	}
}

func TestEarlyLogBufferFlushedToLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	CaptureEarlyLog(SeverityWarning, "buffered before init: %s", "detail")

	logger, err := NewLogger(logPath, 10, 7)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer logger.Close()

	FlushEarlyLogs(logger)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[WARNING] buffered before init: detail") {
		t.Errorf("flushed early log not found in log file:\n%s", string(data))
	}

	// A second flush must not duplicate the messages
	FlushEarlyLogs(logger)
	data, _ = os.ReadFile(logPath)
	if strings.Count(string(data), "buffered before init") != 1 {
		t.Error("early log message was flushed more than once")
	}
}

func TestFlushEarlyLogsCountsTowardRotationSize(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	CaptureEarlyLog(SeverityInfo, "startup message")

	logger, err := NewLogger(logPath, 10, 7)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer logger.Close()

	FlushEarlyLogs(logger)
	logger.Info("after flush")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	logger.mutex.Lock()
	tracked := logger.currentSize
	logger.mutex.Unlock()

	if tracked != info.Size() {
		t.Errorf("tracked size = %d, file size = %d", tracked, info.Size())
	}
}
