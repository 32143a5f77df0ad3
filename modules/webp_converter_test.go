// modules/webp_converter_test.go

package modules

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"WebPBatchConverter/common"
	"WebPBatchConverter/locales"
)

// writeTestPNG writes a small valid PNG file at path, creating parent directories.
func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll(%q) failed: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
}

// newTestModule builds a converter module against a test app window with a
// throwaway logger and config file.
func newTestModule(t *testing.T) *WebPConverterModule {
	t.Helper()

	test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	logger, err := common.NewLogger(filepath.Join(t.TempDir(), "app.log"), 10, 7)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	t.Cleanup(func() { logger.Close() })

	configMgr, err := common.NewConfigManager(filepath.Join(t.TempDir(), "settings.conf"))
	if err != nil {
		t.Fatalf("NewConfigManager: %v", err)
	}

	if err := locales.LoadTranslations("en"); err != nil {
		t.Fatalf("LoadTranslations: %v", err)
	}

	return NewWebPConverterModule(window, configMgr, common.NewErrorHandler(logger))
}

// waitForIdle blocks until the module finishes its running conversion.
func waitForIdle(t *testing.T, m *WebPConverterModule) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for m.converting() {
		if time.Now().After(deadline) {
			t.Fatal("conversion did not finish in time")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestStartIgnoresReactivationWhileConverting(t *testing.T) {
	m := newTestModule(t)

	src := t.TempDir()
	dst := t.TempDir()
	writeTestPNG(t, filepath.Join(src, "a.png"))
	writeTestPNG(t, filepath.Join(src, "sub", "b.png"))

	m.sourceFolderEntry.SetText(src)
	m.destFolderEntry.SetText(dst)

	m.Start()
	if !m.converting() {
		t.Fatal("first activation did not start a conversion")
	}

	// A second activation while the batch runs must not launch another worker
	m.Start()

	waitForIdle(t, m)

	messages := m.GetStatusMessagesContainer().GetMessages()

	// One batch of two files produces exactly: source, destination and file
	// count lines, one line per converted file and a single summary.
	if len(messages) != 6 {
		t.Fatalf("got %d status messages, want 6: %+v", len(messages), messages)
	}

	var converted, summaries int
	for _, msg := range messages {
		if strings.Contains(msg.Content, "✓") {
			converted++
		}
		if strings.Contains(msg.Content, "succeeded") {
			summaries++
		}
	}
	if converted != 2 {
		t.Errorf("got %d per-file success lines, want 2", converted)
	}
	if summaries != 1 {
		t.Errorf("got %d completion summaries, want 1", summaries)
	}

	if !common.FileExists(filepath.Join(dst, "a.webp")) ||
		!common.FileExists(filepath.Join(dst, "sub", "b.webp")) {
		t.Error("converted files are missing from the destination folder")
	}
}

func TestStartRunsAgainAfterCompletion(t *testing.T) {
	m := newTestModule(t)

	src := t.TempDir()
	dst := t.TempDir()
	writeTestPNG(t, filepath.Join(src, "only.png"))

	m.sourceFolderEntry.SetText(src)
	m.destFolderEntry.SetText(dst)

	m.Start()
	waitForIdle(t, m)

	m.Start()
	if !m.converting() {
		t.Fatal("module refused a new conversion after the previous one finished")
	}
	waitForIdle(t, m)
}
