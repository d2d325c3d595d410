package journalwriter

import (
	"bytes"
	"io"
	"os"

	"github.com/coreos/go-systemd/journal"
)

type Priority = journal.Priority

const (
	PriErr     = journal.PriErr
	PriWarning = journal.PriWarning
	PriInfo    = journal.PriInfo
	PriDebug   = journal.PriDebug
)

var _ io.Writer = JournalWriter{} // compile-time interface check

// JournalWriter writes each Write as one systemd journal entry.
// It's an io.Writer, so log.New(JournalWriter{Priority: PriInfo}, "", 0) works.
//
// The zero Priority is 'Emergency', use New or set it explicitly.
type JournalWriter struct {
	Priority
	// Fields are extra journal fields sent with every entry (eg. SYSLOG_IDENTIFIER).
	Fields map[string]string
	// Fallback receives the entry when the journal refuses it. nil drops it.
	Fallback io.Writer
}

// New JournalWriter at p (PriInfo if zero) falling back to stderr.
func New(p Priority) JournalWriter {
	if p == 0 {
		p = PriInfo
	}
	return JournalWriter{Priority: p, Fallback: os.Stderr}
}

// Write sends b without its trailing newline (log.Logger always adds one).
func (j JournalWriter) Write(b []byte) (int, error) {
	msg := string(bytes.TrimRight(b, "\n"))
	if err := journal.Send(msg, j.Priority, j.Fields); err != nil {
		if j.Fallback != nil {
			j.Fallback.Write(b)
		}
		return 0, err
	}
	return len(b), nil
}

// GetJournalOrStderr returns a JournalWriter at p if the journal is running,
// otherwise os.Stderr.
func GetJournalOrStderr(p Priority) io.Writer {
	if !journal.Enabled() {
		return os.Stderr
	}
	return New(p)
}

// Enabled checks whether the local systemd journal is available for logging.
func Enabled() bool {
	return journal.Enabled()
}
