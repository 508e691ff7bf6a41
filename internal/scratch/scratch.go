package scratch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Area is the directory that holds uploads while they are being converted.
type Area struct {
	dir string
}

func NewArea(dir string) (*Area, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir %s: %w", dir, err)
	}

	return &Area{
		dir: dir,
	}, nil
}

func (a *Area) Dir() string {
	return a.dir
}

// Write stores r under name inside the area and returns a handle tracking the
// new file. name is reduced to its base so it cannot escape the area.
func (a *Area) Write(name string, r io.Reader) (*File, error) {
	path := filepath.Join(a.dir, filepath.Base(name))
	file := &File{path: path}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create scratch file: %w", err)
	}
	file.Track(path)

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return file, fmt.Errorf("write scratch file: %w", err)
	}
	if err := out.Close(); err != nil {
		return file, fmt.Errorf("close scratch file: %w", err)
	}

	return file, nil
}

// File groups the paths produced for one conversion. Release removes all of
// them.
type File struct {
	path string

	mu      sync.Mutex
	tracked []string
}

// Path is the location of the file written by Area.Write.
func (f *File) Path() string {
	return f.path
}

// Track adds path to the set removed by Release. Empty paths are ignored.
func (f *File) Track(path string) {
	if path == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracked = append(f.tracked, path)
}

// Release removes every tracked path. Paths that are already gone are not an
// error. Calling Release more than once is safe.
func (f *File) Release() error {
	if f == nil {
		return nil
	}

	f.mu.Lock()
	tracked := f.tracked
	f.tracked = nil
	f.mu.Unlock()

	var errs []error
	for _, path := range tracked {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove %s: %w", path, err))
		}
	}

	return errors.Join(errs...)
}
