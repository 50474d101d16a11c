package contracts

type DirectoryChecker interface {
	DirectoryExists(path string) bool
}

type DirectoryLister interface {
	// ListDirectory returns the entry names directly under path, sorted.
	ListDirectory(path string) ([]string, error)
}

type FileChecker interface {
	FileSize(path string) (int64, error)
}

type Deleter interface {
	RemoveAll(path string) error
}

type ScratchMaker interface {
	// MakeScratchDirectory creates a uniquely-named directory owned
	// exclusively by this run.
	MakeScratchDirectory(prefix string) (string, error)
}

type FileSystem interface {
	DirectoryChecker
	DirectoryLister
	FileChecker
	Deleter
	ScratchMaker
}
