package core

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/endpointops/deploypkg/contracts"
)

// IdempotencyOracle decides whether the target is already installed so
// the run can stop before touching the network.
type IdempotencyOracle struct {
	receipts     contracts.PackageDatabase
	filesystem   contracts.DirectoryChecker
	applications string
}

func NewIdempotencyOracle(
	receipts contracts.PackageDatabase,
	filesystem contracts.DirectoryChecker,
	applicationsDirectory string,
) *IdempotencyOracle {
	return &IdempotencyOracle{
		receipts:     receipts,
		filesystem:   filesystem,
		applications: applicationsDirectory,
	}
}

// AlreadyInstalled consults the receipt database for packages and the
// applications directory for disk images. An empty identity means no
// short-circuit is possible; a failed receipt query downgrades to a
// warning and the install proceeds.
func (this *IdempotencyOracle) AlreadyInstalled(kind contracts.ArtifactKind, identity string) bool {
	if identity == "" {
		return false
	}
	switch kind {
	case contracts.KindPackage:
		present, err := this.receipts.HasReceipt(identity)
		if err != nil {
			log.Warnf("could not query receipt database for %s: %v", identity, err)
			return false
		}
		return present
	case contracts.KindDiskImage:
		return this.filesystem.DirectoryExists(filepath.Join(this.applications, identity))
	default:
		return false
	}
}
