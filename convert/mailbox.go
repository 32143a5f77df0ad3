// convert/mailbox.go

package convert

import (
	"sync"

	"WebPBatchConverter/common"
)

// Message is one unit of worker-to-UI communication. Exactly three variants
// cross the thread boundary: LogMessage, ProgressMessage and CompleteMessage.
type Message interface {
	message()
}

// LogMessage carries one human-readable status line.
type LogMessage struct {
	Severity common.Severity
	Text     string
}

// ProgressMessage reports that file Current of Total is about to be converted.
type ProgressMessage struct {
	Current int
	Total   int
}

// CompleteMessage is the final message of a batch. Succeeded and Failed always
// sum to the length of the original file list.
type CompleteMessage struct {
	Succeeded int
	Failed    int
}

func (LogMessage) message()      {}
func (ProgressMessage) message() {}
func (CompleteMessage) message() {}

// Mailbox is the one-directional channel between the batch worker and the UI
// loop: a thread-safe, unbounded FIFO queue. The worker posts without ever
// blocking; the UI drains all pending messages on a timer, in emission order.
type Mailbox struct {
	mutex   sync.Mutex
	pending []Message
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Post appends a message to the queue. Never blocks.
func (mb *Mailbox) Post(msg Message) {
	mb.mutex.Lock()
	defer mb.mutex.Unlock()

	mb.pending = append(mb.pending, msg)
}

// Drain removes and returns all pending messages in the order they were
// posted. Returns nil when the queue is empty. Never blocks.
func (mb *Mailbox) Drain() []Message {
	mb.mutex.Lock()
	defer mb.mutex.Unlock()

	msgs := mb.pending
	mb.pending = nil
	return msgs
}
