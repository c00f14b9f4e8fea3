// Package pathcheck validates the input and output directories before a run
// starts. Validation only observes and probes; it never creates directories
// or leaves files behind.
package pathcheck

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors returned by Validate when a directory is unusable.
var (
	ErrNotFound    = errors.New("path does not exist")
	ErrNotDir      = errors.New("path is not a directory")
	ErrNotReadable = errors.New("directory cannot be read")
	ErrNotWritable = errors.New("directory cannot be written to")
)

// AccessMode selects the capability Validate probes for.
type AccessMode int

const (
	// AccessRead requires that the directory's entries can be listed.
	AccessRead AccessMode = iota
	// AccessWrite requires that files can be created inside the directory.
	AccessWrite
)

// String returns the mode name for diagnostics.
func (m AccessMode) String() string {
	if m == AccessWrite {
		return "write"
	}
	return "read"
}

// Validate checks that path exists, is a directory, and grants the requested
// access to the current process. A nil return means the directory is usable.
// Errors name the offending path and the nature of the problem.
func Validate(path string, mode AccessMode) error {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDir)
	}

	if mode == AccessWrite {
		return probeWrite(path)
	}
	return probeRead(path)
}

// probeRead opens the directory and lists one entry. Listing exercises both
// the read and traverse permissions needed for discovery.
func probeRead(path string) error {
	d, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, ErrNotReadable)
	}
	defer d.Close()

	if _, err := d.Readdirnames(1); err != nil && err != io.EOF {
		return fmt.Errorf("%s: %w", path, ErrNotReadable)
	}
	return nil
}

// probeWrite creates and immediately removes a temp file inside the
// directory. This is the only reliable permission check across filesystems;
// the probe file never survives the call.
func probeWrite(path string) error {
	f, err := os.CreateTemp(path, ".epub2json-probe-*")
	if err != nil {
		return fmt.Errorf("%s: %w", path, ErrNotWritable)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}
