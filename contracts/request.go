package contracts

import "strings"

// ArtifactKind selects which installation strategy applies to a
// downloaded artifact. Exactly two kinds exist; anything else is
// rejected before any network activity.
type ArtifactKind int

const (
	KindUnknown ArtifactKind = iota
	KindPackage
	KindDiskImage
)

func (this ArtifactKind) String() string {
	switch this {
	case KindPackage:
		return "pkg"
	case KindDiskImage:
		return "dmg"
	default:
		return "unknown"
	}
}

// ParseArtifactKind interprets the forced-type parameter. A leading dot
// and mixed case are tolerated ("PKG", ".dmg").
func ParseArtifactKind(value string) (ArtifactKind, bool) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), ".")) {
	case "pkg":
		return KindPackage, true
	case "dmg":
		return KindDiskImage, true
	default:
		return KindUnknown, false
	}
}

// InstallRequest is the immutable input bundle for a single run,
// assembled once from the positional parameters and never mutated.
//
// InstallIdentity means different things per kind: a receipt identifier
// for packages, an application bundle name for disk images.
type InstallRequest struct {
	SourceURL        string
	ExpectedDigest   string
	DisplayName      string
	InstallIdentity  string
	MinimumOSVersion string
	ForcedKind       string
}

// Outcome is the terminal state of a run. Failure is represented by the
// error (and its exit code) accompanying OutcomeFailed.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeInstalled
	OutcomeAlreadyPresent
)

func (this Outcome) String() string {
	switch this {
	case OutcomeInstalled:
		return "installed"
	case OutcomeAlreadyPresent:
		return "already installed"
	default:
		return "failed"
	}
}
