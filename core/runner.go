package core

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/endpointops/deploypkg/contracts"
)

// Capabilities bundles every external collaborator the pipeline
// consumes. Production wiring lives in cmd/deploypkg; tests substitute
// fakes member by member.
type Capabilities struct {
	Versions   contracts.OSVersionReader
	Receipts   contracts.PackageDatabase
	Downloader contracts.Downloader
	Digests    contracts.DigestComputer
	Signatures contracts.SignatureChecker
	Installer  contracts.PackageInstaller
	Mounter    contracts.DiskImageMounter
	Copier     contracts.FileCopier
	Quarantine contracts.QuarantineStripper
	FileSystem contracts.FileSystem
}

// Runner drives the install pipeline: preconditions, classification,
// idempotency, download, verification, then the kind-specific
// strategy. It is strictly sequential; the only cleanup guarantee is
// the reaper, which the caller must Release on every exit path.
type Runner struct {
	capabilities Capabilities
	reaper       *Reaper
	gate         *PreconditionGate
	oracle       *IdempotencyOracle
	fetcher      *Fetcher
	verifier     *IntegrityVerifier
	packages     *PackageStrategy
	diskImages   *DiskImageStrategy
}

func NewRunner(capabilities Capabilities, reaper *Reaper, applicationsDirectory string) *Runner {
	return &Runner{
		capabilities: capabilities,
		reaper:       reaper,
		gate:         NewPreconditionGate(capabilities.Versions),
		oracle:       NewIdempotencyOracle(capabilities.Receipts, capabilities.FileSystem, applicationsDirectory),
		fetcher:      NewFetcher(capabilities.Downloader, capabilities.FileSystem),
		verifier:     NewIntegrityVerifier(capabilities.Digests),
		packages:     NewPackageStrategy(capabilities.Signatures, capabilities.Installer, capabilities.Receipts),
		diskImages: NewDiskImageStrategy(capabilities.Mounter, capabilities.FileSystem,
			capabilities.Copier, capabilities.Quarantine, reaper, applicationsDirectory),
	}
}

func (this *Runner) Run(request contracts.InstallRequest) (contracts.Outcome, error) {
	if err := this.gate.RequireURL(request); err != nil {
		return contracts.OutcomeFailed, err
	}
	if err := this.gate.RequireMinimumOS(request); err != nil {
		return contracts.OutcomeFailed, err
	}

	kind, err := Classify(request)
	if err != nil {
		return contracts.OutcomeFailed, err
	}
	log.Infof("artifact type: %s", kind)

	if this.oracle.AlreadyInstalled(kind, request.InstallIdentity) {
		log.Infof("%s is already installed; nothing to do", request.InstallIdentity)
		return contracts.OutcomeAlreadyPresent, nil
	}

	scratch, err := this.capabilities.FileSystem.MakeScratchDirectory("deploypkg-")
	if err != nil {
		return contracts.OutcomeFailed, contracts.NewFailure(contracts.ExitDownloadFailed,
			"could not create scratch directory: %v", err)
	}
	this.reaper.TrackScratch(scratch)
	artifact := filepath.Join(scratch, "artifact."+kind.String())

	log.Infof("downloading %s", request.SourceURL)
	if err := this.fetcher.Fetch(request.SourceURL, artifact); err != nil {
		return contracts.OutcomeFailed, err
	}
	if err := this.verifier.Verify(artifact, request.ExpectedDigest); err != nil {
		return contracts.OutcomeFailed, err
	}

	switch kind {
	case contracts.KindPackage:
		err = this.packages.Install(artifact, request.InstallIdentity)
	case contracts.KindDiskImage:
		err = this.diskImages.Install(artifact, request.InstallIdentity)
	}
	if err != nil {
		return contracts.OutcomeFailed, err
	}
	return contracts.OutcomeInstalled, nil
}
