package shell

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
)

// InMemoryFileSystem implements the filesystem contracts against a map
// of paths, letting core orchestration tests run without disk access.
// Directories (application bundles included) are entries flagged as
// such; files carry a size.
type InMemoryFileSystem struct {
	entries      map[string]*entry
	RemovedPaths []string
	RemoveErrors map[string]error
	scratchCount int
}

func NewInMemoryFileSystem() *InMemoryFileSystem {
	return &InMemoryFileSystem{
		entries:      make(map[string]*entry),
		RemoveErrors: make(map[string]error),
	}
}

func (this *InMemoryFileSystem) MkDir(directory string) {
	for current := path.Clean(directory); current != "/" && current != "."; current = path.Dir(current) {
		if this.entries[current] == nil {
			this.entries[current] = &entry{directory: true}
		}
	}
}

func (this *InMemoryFileSystem) WriteFile(filePath string, size int64) {
	this.MkDir(path.Dir(filePath))
	this.entries[path.Clean(filePath)] = &entry{size: size}
}

func (this *InMemoryFileSystem) DirectoryExists(target string) bool {
	found := this.entries[path.Clean(target)]
	return found != nil && found.directory
}

func (this *InMemoryFileSystem) ListDirectory(directory string) ([]string, error) {
	if !this.DirectoryExists(directory) {
		return nil, os.ErrNotExist
	}
	prefix := path.Clean(directory) + "/"
	var names []string
	for candidate := range this.entries {
		if !strings.HasPrefix(candidate, prefix) {
			continue
		}
		remainder := strings.TrimPrefix(candidate, prefix)
		if !strings.Contains(remainder, "/") {
			names = append(names, remainder)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (this *InMemoryFileSystem) FileSize(target string) (int64, error) {
	found := this.entries[path.Clean(target)]
	if found == nil || found.directory {
		return 0, os.ErrNotExist
	}
	return found.size, nil
}

func (this *InMemoryFileSystem) RemoveAll(target string) error {
	target = path.Clean(target)
	this.RemovedPaths = append(this.RemovedPaths, target)
	if err := this.RemoveErrors[target]; err != nil {
		return err
	}
	delete(this.entries, target)
	prefix := target + "/"
	for candidate := range this.entries {
		if strings.HasPrefix(candidate, prefix) {
			delete(this.entries, candidate)
		}
	}
	return nil
}

func (this *InMemoryFileSystem) MakeScratchDirectory(prefix string) (string, error) {
	this.scratchCount++
	scratch := fmt.Sprintf("/tmp/%s%04d", prefix, this.scratchCount)
	this.MkDir(scratch)
	return scratch, nil
}

// CopyDirectory makes the in-memory filesystem double as the FileCopier
// fake: the destination tree mirrors the source tree.
func (this *InMemoryFileSystem) CopyDirectory(source, destination string) error {
	source, destination = path.Clean(source), path.Clean(destination)
	if !this.DirectoryExists(source) {
		return os.ErrNotExist
	}
	this.MkDir(destination)
	prefix := source + "/"
	for candidate, found := range this.entries {
		if strings.HasPrefix(candidate, prefix) {
			copied := *found
			this.entries[path.Join(destination, strings.TrimPrefix(candidate, prefix))] = &copied
		}
	}
	return nil
}

/////////////////////////////////////////////////

type entry struct {
	directory bool
	size      int64
}
