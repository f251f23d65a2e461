package util

import (
	"io"
	"os"
	"path/filepath"
)

const tmpSuffix = ".tmp"

// SecureFile writes to a temporary file next to path and replaces path with it
// on Close, so readers never observe a partially written file.
type SecureFile struct {
	path      string
	corrupted bool
	f         *os.File
}

func CreateSecureFile(path string) (*SecureFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	f, err := os.Create(path + tmpSuffix)
	if err != nil {
		return nil, err
	}

	return &SecureFile{path: path, f: f}, nil
}

func (sf *SecureFile) Write(p []byte) (int, error) {
	n, err := sf.f.Write(p)
	if err != nil {
		sf.corrupted = true
	}
	return n, err
}

// Corrupted marks the content as unusable. Close will then discard it.
func (sf *SecureFile) Corrupted() {
	sf.corrupted = true
}

func (sf *SecureFile) Close() error {
	err := sf.f.Close()
	tmpPath := sf.f.Name()
	if sf.corrupted || err != nil {
		os.Remove(tmpPath)
		if err == nil {
			err = errCorrupted
		}
		return err
	}
	return os.Rename(tmpPath, sf.path)
}

// WriteSecure streams the output of write into path through a SecureFile.
func WriteSecure(path string, write func(io.Writer) error) error {
	sf, err := CreateSecureFile(path)
	if err != nil {
		return err
	}
	if err := write(sf); err != nil {
		sf.Corrupted()
		sf.Close()
		return err
	}
	return sf.Close()
}
