package directory

import "sync"

// mailboxCapacity bounds the number of pending messages a single mailbox
// will hold, so overflow can be surfaced through a reply field instead of
// being silently dropped.
const mailboxCapacity = 1000

// Mailbox is a FIFO queue of pending messages for one user, guarded by its
// own mutex so that different mailboxes never contend with each other.
type Mailbox struct {
	mu       sync.Mutex
	messages []string
}

// NewMailbox returns an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Append adds msg to the tail of the queue. It reports false, without
// modifying the queue, if the mailbox is already at capacity — callers
// must surface this rather than discard the message silently.
func (m *Mailbox) Append(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.messages) >= mailboxCapacity {
		return false
	}
	m.messages = append(m.messages, msg)
	return true
}

// PopOne removes and returns the oldest message. ok is false iff the queue
// was already empty, so a caller popping the last message observes the
// queue empty on its very next probe.
func (m *Mailbox) PopOne() (msg string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.messages) == 0 {
		return "", false
	}
	msg = m.messages[0]
	m.messages = m.messages[1:]
	return msg, true
}

// Len reports the number of pending messages.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

// DrainAll concatenates every pending message in FIFO order and empties the
// queue in one step.
func (m *Mailbox) DrainAll() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out string
	for _, msg := range m.messages {
		out += msg
	}
	m.messages = nil
	return out
}
