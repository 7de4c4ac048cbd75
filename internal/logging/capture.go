package logging

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// StderrCapture redirects file descriptor 2 into a pipe so that output
// written by native libraries (WebKit, GTK) ends up in the structured log
// instead of interleaving with it.
type StderrCapture struct {
	original *os.File
	read     *os.File
	write    *os.File
	done     chan struct{}
	started  bool
	stopOnce sync.Once
}

// StartStderrCapture swaps fd 2 for a pipe. Use Original as the logger's
// output to avoid feeding log lines back into the capture.
func StartStderrCapture() (*StderrCapture, error) {
	origFD, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		return nil, fmt.Errorf("dup stderr: %w", err)
	}
	original := os.NewFile(uintptr(origFD), "stderr-original")

	r, w, err := os.Pipe()
	if err != nil {
		_ = original.Close()
		return nil, fmt.Errorf("create stderr pipe: %w", err)
	}

	if err := unix.Dup3(int(w.Fd()), int(os.Stderr.Fd()), 0); err != nil {
		_ = original.Close()
		_ = r.Close()
		_ = w.Close()
		return nil, fmt.Errorf("redirect stderr: %w", err)
	}

	return &StderrCapture{
		original: original,
		read:     r,
		write:    w,
		done:     make(chan struct{}),
	}, nil
}

// Original is the terminal stderr as it was before the capture started.
func (c *StderrCapture) Original() io.Writer {
	return c.original
}

// Forward logs every captured line at debug level until Stop is called.
func (c *StderrCapture) Forward(logger zerolog.Logger) {
	if c.started {
		return
	}
	c.started = true
	go func() {
		defer close(c.done)
		scanner := bufio.NewScanner(c.read)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				logger.Debug().Str("stream", "stderr").Msg(line)
			}
		}
	}()
}

// Stop restores fd 2 and closes the pipe.
func (c *StderrCapture) Stop() {
	c.stopOnce.Do(func() {
		if err := unix.Dup3(int(c.original.Fd()), int(os.Stderr.Fd()), 0); err != nil {
			fmt.Fprintf(c.original, "warning: failed to restore stderr: %v\n", err)
		}
		_ = c.write.Close()
		if c.started {
			<-c.done
		}
		_ = c.read.Close()
	})
}
