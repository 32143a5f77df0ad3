// convert/worker_test.go

package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"WebPBatchConverter/common"
)

func TestMailboxPreservesOrder(t *testing.T) {
	mb := NewMailbox()
	for i := 1; i <= 5; i++ {
		mb.Post(ProgressMessage{Current: i, Total: 5})
	}

	msgs := mb.Drain()
	if len(msgs) != 5 {
		t.Fatalf("Drain() returned %d messages, want 5", len(msgs))
	}
	for i, msg := range msgs {
		p, ok := msg.(ProgressMessage)
		if !ok {
			t.Fatalf("message %d is %T, want ProgressMessage", i, msg)
		}
		if p.Current != i+1 {
			t.Errorf("message %d has Current=%d, want %d", i, p.Current, i+1)
		}
	}

	if rest := mb.Drain(); rest != nil {
		t.Errorf("second Drain() = %v, want nil", rest)
	}
}

func TestMailboxConcurrentPost(t *testing.T) {
	mb := NewMailbox()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mb.Post(LogMessage{Severity: common.SeverityInfo, Text: "x"})
			}
		}()
	}
	wg.Wait()

	if got := len(mb.Drain()); got != 1000 {
		t.Errorf("Drain() returned %d messages, want 1000", got)
	}
}

// runWorker runs a batch synchronously against a stubbed convert function and
// returns all emitted messages.
func runWorker(t *testing.T, files []string, convert ConvertFunc) []Message {
	t.Helper()
	mb := NewMailbox()
	w := NewWorker(testRoot("src"), testRoot("dst"), files, mb)
	w.Convert = convert
	w.Run()
	return mb.Drain()
}

func sourceFiles(n int) []string {
	files := make([]string, n)
	for i := range files {
		files[i] = filepath.Join(testRoot("src"), fmt.Sprintf("file%02d.png", i+1))
	}
	return files
}

func TestWorkerMessageSequence(t *testing.T) {
	// Three files, the second one fails deterministically
	files := sourceFiles(3)
	msgs := runWorker(t, files, func(src, dest string) error {
		if src == files[1] {
			return errors.New("induced codec failure")
		}
		return nil
	})

	var progress []ProgressMessage
	var completes []CompleteMessage
	for _, msg := range msgs {
		switch m := msg.(type) {
		case ProgressMessage:
			progress = append(progress, m)
		case CompleteMessage:
			completes = append(completes, m)
		}
	}

	if len(progress) != 3 {
		t.Fatalf("got %d Progress messages, want 3", len(progress))
	}
	for i, p := range progress {
		if p.Current != i+1 || p.Total != 3 {
			t.Errorf("Progress[%d] = (%d/%d), want (%d/3)", i, p.Current, p.Total, i+1)
		}
	}

	if len(completes) != 1 {
		t.Fatalf("got %d Complete messages, want exactly 1", len(completes))
	}
	done := completes[0]
	if done.Succeeded != 2 || done.Failed != 1 {
		t.Errorf("Complete = (%d succeeded, %d failed), want (2, 1)", done.Succeeded, done.Failed)
	}

	if _, ok := msgs[len(msgs)-1].(CompleteMessage); !ok {
		t.Errorf("last message is %T, want CompleteMessage", msgs[len(msgs)-1])
	}
}

func TestWorkerCountersSumToFileCount(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		failing map[int]bool // zero-based indices that fail
	}{
		{"all succeed", 4, map[int]bool{}},
		{"all fail", 4, map[int]bool{0: true, 1: true, 2: true, 3: true}},
		{"first fails", 3, map[int]bool{0: true}},
		{"last fails", 3, map[int]bool{2: true}},
		{"alternating", 5, map[int]bool{0: true, 2: true, 4: true}},
		{"empty batch", 0, map[int]bool{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			files := sourceFiles(tc.total)
			index := make(map[string]int, len(files))
			for i, f := range files {
				index[f] = i
			}

			msgs := runWorker(t, files, func(src, dest string) error {
				if tc.failing[index[src]] {
					return errors.New("induced failure")
				}
				return nil
			})

			done, ok := msgs[len(msgs)-1].(CompleteMessage)
			if !ok {
				t.Fatalf("last message is %T, want CompleteMessage", msgs[len(msgs)-1])
			}
			if done.Succeeded+done.Failed != tc.total {
				t.Errorf("counters sum to %d, want %d", done.Succeeded+done.Failed, tc.total)
			}
			if done.Failed != len(tc.failing) {
				t.Errorf("Failed = %d, want %d", done.Failed, len(tc.failing))
			}
		})
	}
}

func TestWorkerPanicCountedAsFailure(t *testing.T) {
	files := sourceFiles(3)
	msgs := runWorker(t, files, func(src, dest string) error {
		if src == files[1] {
			panic("codec blew up")
		}
		return nil
	})

	done, ok := msgs[len(msgs)-1].(CompleteMessage)
	if !ok {
		t.Fatalf("last message is %T, want CompleteMessage", msgs[len(msgs)-1])
	}
	if done.Succeeded != 2 || done.Failed != 1 {
		t.Errorf("Complete = (%d, %d), want (2, 1)", done.Succeeded, done.Failed)
	}

	var sawPanicLog bool
	for _, msg := range msgs {
		if l, ok := msg.(LogMessage); ok && l.Severity == common.SeverityError && strings.Contains(l.Text, "codec blew up") {
			sawPanicLog = true
		}
	}
	if !sawPanicLog {
		t.Error("expected an error log mentioning the recovered panic")
	}
}

func TestWorkerMapsDestinationThroughPathTransform(t *testing.T) {
	src := testRoot("src")
	dst := testRoot("dst")
	file := filepath.Join(src, "sub", "pic.PNG")

	var gotDest string
	mb := NewMailbox()
	w := NewWorker(src, dst, []string{file}, mb)
	w.Convert = func(source, dest string) error {
		gotDest = dest
		return nil
	}
	w.Run()

	want := filepath.Join(dst, "sub", "pic.webp")
	if gotDest != want {
		t.Errorf("worker passed dest %q, want %q", gotDest, want)
	}
}
