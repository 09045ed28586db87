package snapshot

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

// ErrStorageUnavailable matches every StorageError
var ErrStorageUnavailable = errors.New("snapshot storage unavailable")

// StorageError records a failed open, read, write or close
type StorageError struct {
	Op   string
	Name string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Name == "" {
		return "snapshot " + e.Op + ": " + e.Err.Error()
	}
	return "snapshot " + e.Op + " " + e.Name + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrStorageUnavailable) hold for any StorageError
func (e *StorageError) Is(target error) bool { return target == ErrStorageUnavailable }

// Source opens a snapshot for reading
type Source interface {
	Open() (io.ReadCloser, error)
}

// Sink creates a destination for a snapshot
type Sink interface {
	Create() (io.WriteCloser, error)
}

const filePerm = 0o644

// File is a snapshot on the local filesystem
type File string

func (f File) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

// Create writes into a temporary file next to f that replaces f on a clean Close.
// If any write failed, Close discards the temporary file and f is left as it was.
func (f File) Create() (io.WriteCloser, error) {
	dir, base := filepath.Split(string(f))
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &atomicFile{File: tmp, path: string(f)}, nil
}

func (f File) String() string { return string(f) }

type atomicFile struct {
	*os.File
	path   string
	failed bool
}

func (a *atomicFile) Write(p []byte) (int, error) {
	n, err := a.File.Write(p)
	if err != nil {
		a.failed = true
	}
	return n, err
}

func (a *atomicFile) Close() error {
	tmpName := a.File.Name()
	if err := a.File.Close(); err != nil || a.failed {
		os.Remove(tmpName)
		if err == nil {
			err = errors.Errorf("discarded %s after failed write", tmpName)
		}
		return err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, a.path)
}

// FSFile is a snapshot inside an fs.FS, such as embedded content
type FSFile struct {
	FS   fs.FS
	Name string
}

func (f FSFile) Open() (io.ReadCloser, error) {
	return f.FS.Open(f.Name)
}

func (f FSFile) String() string { return f.Name }

func sourceName(v any) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}

// ReadFromStorage opens src, reads one snapshot and closes src on every path
func ReadFromStorage(src Source, dimension int) (snap Snapshot, err error) {
	name := sourceName(src)
	rc, err := src.Open()
	if err != nil {
		return nil, &StorageError{Op: "open", Name: name, Err: err}
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			utils.Logger().Warn("closing snapshot source failed", "source", name, "error", cerr)
			if err == nil {
				snap, err = nil, &StorageError{Op: "close", Name: name, Err: cerr}
			}
		}
	}()

	snap, err = Read(rc, dimension)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFromStorage] %s", name)
	}
	utils.Logger().Debug("snapshot read", "source", name, "dimension", dimension)
	return snap, nil
}

// WriteToStorage creates dst, writes s and closes dst on every path.
// The snapshot is validated before dst is created.
func WriteToStorage(s Snapshot, dst Sink) (err error) {
	name := sourceName(dst)
	data, err := Marshal(s)
	if err != nil {
		return errors.Wrapf(err, "[WriteToStorage] %s", name)
	}

	wc, err := dst.Create()
	if err != nil {
		return &StorageError{Op: "create", Name: name, Err: err}
	}
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = &StorageError{Op: "close", Name: name, Err: cerr}
		}
	}()

	if _, err = wc.Write(data); err != nil {
		return &StorageError{Op: "write", Name: name, Err: err}
	}
	utils.Logger().Debug("snapshot written", "sink", name, "dimension", s.Dimension())
	return nil
}

// Load reads a snapshot from src and applies it to g; g is unchanged on error
func Load(g *model.Grid, src Source) error {
	s, err := ReadFromStorage(src, g.Dimension())
	if err != nil {
		return err
	}
	return ApplyTo(g, s)
}

// Save writes the current state of g to dst
func Save(g *model.Grid, dst Sink) error {
	return WriteToStorage(Encode(g), dst)
}
