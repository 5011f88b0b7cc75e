package main

import (
	"fmt"
	"os"
)

// osFileIO implements context.FileIO against the real filesystem. It
// is the concrete collaborator implementation spec §6 says belongs to
// the embedding program, not the simulation core: pkg/recording only
// ever sees the FileIO interface.
type osFileIO struct{}

func (osFileIO) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFileIO) AppendBytes(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", path, err)
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}

func (osFileIO) ReadBytes(path string, offset, length int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	buf := make([]byte, length)
	n, err := f.ReadAt(buf, offset)
	if n == 0 && err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (osFileIO) WriteHeader(path string, header []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s for header write: %w", path, err)
	}
	defer f.Close()
	_, err = f.WriteAt(header, 0)
	return err
}

func (osFileIO) RemoveFile(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (osFileIO) RenameFile(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (osFileIO) CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	return os.WriteFile(dst, data, 0644)
}
