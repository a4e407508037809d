package ftp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/meemoo/sidecar-creator/pkg/sidecar/transfer"
)

// Config options for the FTP sink
type Config struct {
	URL      string        // Destination as a URL; only the host part is used
	User     string        // FTP user
	Password string        // FTP password
	Timeout  time.Duration // Dial timeout (default: 30s)
}

// Sink uploads sidecars to a MediaHaven FTP drop directory. Each Put opens
// its own session and closes it on every exit path; nothing is shared
// between calls, so a Sink is safe for concurrent use.
type Sink struct {
	addr     string
	user     string
	password string
	timeout  time.Duration
}

// New creates a new FTP transfer sink
func New(config Config) (*Sink, error) {
	if config.URL == "" {
		return nil, errors.New("ftp url is required")
	}
	addr, err := hostFromURL(config.URL)
	if err != nil {
		return nil, err
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	return &Sink{
		addr:     addr,
		user:     config.User,
		password: config.Password,
		timeout:  config.Timeout,
	}, nil
}

var _ transfer.Sink = (*Sink)(nil)

// Put stores content as filename inside dir. The session is established per
// call; a connect or login failure is fatal to the call and surfaced as-is.
// Transfers run in binary mode.
func (s *Sink) Put(ctx context.Context, content []byte, dir, filename string) error {
	conn, err := ftp.Dial(s.addr,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(s.timeout),
	)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", s.addr, err)
	}
	defer conn.Quit()

	if err := conn.Login(s.user, s.password); err != nil {
		return fmt.Errorf("login to %s: %w", s.addr, err)
	}
	if err := conn.ChangeDir(dir); err != nil {
		return fmt.Errorf("change dir to %s: %w", dir, err)
	}
	if err := conn.Stor(filename, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("store %s: %w", filename, err)
	}

	slog.Debug("stored sidecar over ftp", "host", s.addr, "dir", dir, "filename", filename)
	return nil
}

// hostFromURL keeps only the host of a destination URL, since destinations
// are configured as full URLs. Port 21 is assumed when none is given.
func hostFromURL(raw string) (string, error) {
	parts, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse ftp url: %w", err)
	}
	if parts.Host == "" {
		return "", fmt.Errorf("ftp url %q has no host", raw)
	}
	addr := parts.Host
	if parts.Port() == "" {
		addr += ":21"
	}
	return addr, nil
}
