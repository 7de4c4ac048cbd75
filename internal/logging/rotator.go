package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	logFileName      = "kiosk.log"
	backupTimeLayout = "20060102-150405.000"
)

// LogRotator is an io.Writer that rolls kiosk.log over once it reaches
// maxSize. Backups are named kiosk.log.<timestamp>[.gz] and pruned by age
// and count after every rotation.
type LogRotator struct {
	mu         sync.Mutex
	dir        string
	baseName   string
	maxSize    int64
	maxAge     time.Duration
	maxBackups int
	compress   bool
	now        func() time.Time

	file *os.File
	size int64
}

// NewLogRotator opens (or creates) kiosk.log in dir.
func NewLogRotator(dir string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*LogRotator, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	r := &LogRotator{
		dir:        dir,
		baseName:   logFileName,
		maxSize:    int64(maxSizeMB) << 20,
		maxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		maxBackups: maxBackups,
		compress:   compress,
		now:        time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *LogRotator) Path() string {
	return filepath.Join(r.dir, r.baseName)
}

func (r *LogRotator) open() error {
	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.file = nil

	backup := r.Path() + "." + r.now().Format(backupTimeLayout)
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress %s: %v\n", backup, err)
		}
	}

	if err := r.prune(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: log cleanup: %v\n", err)
	}

	return r.open()
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err == nil {
		err = zw.Close()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path + ".gz")
		return err
	}
	return os.Remove(path)
}

type backupFile struct {
	name    string
	modTime time.Time
}

func (r *LogRotator) prune() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return err
	}

	now := r.now()
	var (
		backups []backupFile
		errs    []error
	)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.baseName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			errs = append(errs, os.Remove(filepath.Join(r.dir, entry.Name())))
			continue
		}
		backups = append(backups, backupFile{name: entry.Name(), modTime: info.ModTime()})
	}

	if r.maxBackups > 0 && len(backups) > r.maxBackups {
		slices.SortFunc(backups, func(a, b backupFile) int {
			if c := a.modTime.Compare(b.modTime); c != 0 {
				return c
			}
			return strings.Compare(a.name, b.name)
		})
		for _, b := range backups[:len(backups)-r.maxBackups] {
			errs = append(errs, os.Remove(filepath.Join(r.dir, b.name)))
		}
	}

	return errors.Join(errs...)
}

// Close closes the active file. A later Write reopens it.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
