// superlog picks where log output goes: stderr, syslog (local or remote) or the systemd journal.
package superlog

import (
	"fmt"
	"io"
	"log"
	"log/syslog"
	"os"
	"path/filepath"

	"github.com/aerth/str2num/journalwriter"
)

type Config struct {
	Priority     journalwriter.Priority // journal priority, INFO if zero
	Syslog       bool                   // local syslog
	Journal      bool                   // systemd journal
	RemoteSyslog string                 // host:port, udp
	Prefix       string
	Flags        int // log.Flags, ignored for syslog and journal which stamp their own time
}

// Writer returns a non-nil io.Writer. if err is not nil, os.Stderr is returned with the error.
func Writer(c Config) (io.Writer, error) {
	switch {
	case c.Syslog || c.RemoteSyslog != "":
		netw := ""
		if c.RemoteSyslog != "" {
			netw = "udp"
		}
		w, err := syslog.Dial(netw, c.RemoteSyslog, syslog.LOG_INFO|syslog.LOG_DAEMON, filepath.Base(os.Args[0]))
		if err != nil {
			return os.Stderr, fmt.Errorf("syslog: %w", err)
		}
		return w, nil
	case c.Journal:
		if !journalwriter.Enabled() {
			return os.Stderr, fmt.Errorf("journal not enabled")
		}
		return journalwriter.New(c.Priority), nil
	default:
		return os.Stderr, nil
	}
}

// New logger for c. On error the logger still works (writing to stderr).
func New(c Config) (*log.Logger, error) {
	w, err := Writer(c)
	flags := c.Flags
	if w != os.Stderr {
		flags = 0
	}
	return log.New(w, c.Prefix, flags), err
}
