package contracts

// The OS utilities and network primitives the pipeline drives are each
// consumed through a narrow interface so the orchestration in core can
// be exercised against fakes, without a real filesystem or network.

type Downloader interface {
	// Download performs a single transfer attempt, truncating any prior
	// content at destination. Redirects are followed; a non-2xx status
	// is an error.
	Download(url, destination string) error
}

type DigestComputer interface {
	// FileDigest returns the lower-case hex SHA-256 digest of the file.
	FileDigest(path string) (string, error)
}

type OSVersionReader interface {
	ProductVersion() (string, error)
}

type PackageDatabase interface {
	// HasReceipt reports whether the system package database holds an
	// exact-match receipt for identifier.
	HasReceipt(identifier string) (bool, error)
}

type PackageInstaller interface {
	Install(packagePath, targetVolume string) error
}

// SignatureChecker is advisory: a failed assessment is logged, never
// fatal.
type SignatureChecker interface {
	Assess(path string) error
}

type DiskImageMounter interface {
	// Attach mounts the image and returns the resolved mount point.
	Attach(imagePath string) (mountPoint string, err error)
	Detach(mountPoint string) error
}

type FileCopier interface {
	// CopyDirectory recursively copies source to destination,
	// preserving structure.
	CopyDirectory(source, destination string) error
}

type QuarantineStripper interface {
	StripQuarantine(path string) error
}
