// convert/worker.go

package convert

import (
	"fmt"
	"path/filepath"

	"WebPBatchConverter/common"
)

// ConvertFunc converts one source file into one destination file. The batch
// worker only ever sees its error result; tests substitute deterministic
// failures here.
type ConvertFunc func(sourcePath, destPath string) error

// Worker performs one conversion batch on a background goroutine. It owns the
// file list and the counters for the whole run and reports everything through
// the mailbox; it never touches UI state. A Worker is single-use: one call to
// Run per instance.
type Worker struct {
	SourceRoot string
	DestRoot   string
	Files      []string
	Mailbox    *Mailbox

	// Convert is the per-file codec call, ConvertPNGToWebP unless overridden.
	Convert ConvertFunc
}

// NewWorker creates a worker for one batch over the given file list.
func NewWorker(sourceRoot, destRoot string, files []string, mailbox *Mailbox) *Worker {
	return &Worker{
		SourceRoot: sourceRoot,
		DestRoot:   destRoot,
		Files:      files,
		Mailbox:    mailbox,
		Convert:    ConvertPNGToWebP,
	}
}

// Run processes every file in discovery order and posts exactly one
// CompleteMessage as the final message of the batch, no matter how many
// per-file failures occurred or whether the iteration itself faulted. The
// reported counters always sum to the original file list length: an
// unexpected batch-level fault folds all unprocessed files into the failure
// count before completion is signalled.
func (w *Worker) Run() {
	total := len(w.Files)
	succeeded := 0
	failed := 0

	defer func() {
		if r := recover(); r != nil {
			w.Mailbox.Post(LogMessage{
				Severity: common.SeverityError,
				Text:     fmt.Sprintf("Fatal error in conversion worker: %v", r),
			})
			failed = total - succeeded
		}
		w.Mailbox.Post(CompleteMessage{Succeeded: succeeded, Failed: failed})
	}()

	for i, sourceFile := range w.Files {
		w.Mailbox.Post(ProgressMessage{Current: i + 1, Total: total})

		destFile := TransformPath(sourceFile, w.SourceRoot, w.DestRoot)

		if err := w.convertOne(sourceFile, destFile); err != nil {
			failed++
			w.Mailbox.Post(LogMessage{
				Severity: common.SeverityError,
				Text:     fmt.Sprintf("[%d/%d] ✗ %s: %v", i+1, total, filepath.Base(sourceFile), err),
			})
			continue
		}

		succeeded++
		w.Mailbox.Post(LogMessage{
			Severity: common.SeverityInfo,
			Text:     fmt.Sprintf("[%d/%d] ✓ %s", i+1, total, filepath.Base(sourceFile)),
		})
	}
}

// convertOne shields the batch loop from a panicking convert function; the
// fault is demoted to a counted per-file failure.
func (w *Worker) convertOne(sourceFile, destFile string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected fault: %v", r)
		}
	}()
	return w.Convert(sourceFile, destFile)
}
