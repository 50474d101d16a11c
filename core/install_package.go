package core

import (
	log "github.com/sirupsen/logrus"

	"github.com/endpointops/deploypkg/contracts"
)

const rootVolume = "/"

// PackageStrategy installs a package artifact through the system
// installer. The signature check before it and the receipt check after
// it are both advisory; only the installer itself can fail the run.
type PackageStrategy struct {
	signatures contracts.SignatureChecker
	installer  contracts.PackageInstaller
	receipts   contracts.PackageDatabase
}

func NewPackageStrategy(
	signatures contracts.SignatureChecker,
	installer contracts.PackageInstaller,
	receipts contracts.PackageDatabase,
) *PackageStrategy {
	return &PackageStrategy{signatures: signatures, installer: installer, receipts: receipts}
}

func (this *PackageStrategy) Install(artifactPath, installIdentity string) error {
	if err := this.signatures.Assess(artifactPath); err != nil {
		log.Warnf("signature check failed, continuing anyway: %v", err)
	} else {
		log.Info("signature check passed")
	}

	log.Info("running the system package installer")
	if err := this.installer.Install(artifactPath, rootVolume); err != nil {
		return contracts.NewFailure(contracts.ExitInstallerFailed,
			"package installer failed: %v", err)
	}

	if installIdentity != "" {
		if present, err := this.receipts.HasReceipt(installIdentity); err != nil {
			log.Warnf("could not query receipt database for %s: %v", installIdentity, err)
		} else if !present {
			log.Warnf("no receipt found for %s after installation", installIdentity)
		}
	}
	log.Info("package installed")
	return nil
}
