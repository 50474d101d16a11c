package shell

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type DiskFileSystem struct{}

func NewDiskFileSystem() *DiskFileSystem {
	return &DiskFileSystem{}
}

func (this *DiskFileSystem) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (this *DiskFileSystem) ListDirectory(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (this *DiskFileSystem) FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (this *DiskFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (this *DiskFileSystem) MakeScratchDirectory(prefix string) (string, error) {
	scratch := filepath.Join(os.TempDir(), prefix+uuid.NewString())
	if err := os.MkdirAll(scratch, 0700); err != nil {
		return "", err
	}
	return scratch, nil
}
