package core

import (
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/endpointops/deploypkg/contracts"
)

const (
	bundleSuffix      = ".app"
	bundleSearchDepth = 2
)

// DiskImageStrategy mounts the image, locates the application bundle
// inside it, and replaces any same-named bundle in the applications
// directory. The mount is registered with the reaper immediately so it
// is detached on every exit path.
type DiskImageStrategy struct {
	mounter      contracts.DiskImageMounter
	filesystem   contracts.FileSystem
	copier       contracts.FileCopier
	quarantine   contracts.QuarantineStripper
	reaper       *Reaper
	applications string
}

func NewDiskImageStrategy(
	mounter contracts.DiskImageMounter,
	filesystem contracts.FileSystem,
	copier contracts.FileCopier,
	quarantine contracts.QuarantineStripper,
	reaper *Reaper,
	applicationsDirectory string,
) *DiskImageStrategy {
	return &DiskImageStrategy{
		mounter:      mounter,
		filesystem:   filesystem,
		copier:       copier,
		quarantine:   quarantine,
		reaper:       reaper,
		applications: applicationsDirectory,
	}
}

func (this *DiskImageStrategy) Install(artifactPath, installIdentity string) error {
	mountPoint, err := this.mounter.Attach(artifactPath)
	if err != nil {
		return contracts.NewFailure(contracts.ExitMountFailed,
			"could not mount disk image: %v", err)
	}
	if mountPoint != "" {
		this.reaper.TrackMount(mountPoint)
	}
	if mountPoint == "" || !this.filesystem.DirectoryExists(mountPoint) {
		return contracts.NewFailure(contracts.ExitMountFailed,
			"mount point %q is not a directory", mountPoint)
	}
	log.Infof("mounted at %s", mountPoint)

	bundle, err := this.locateBundle(mountPoint, installIdentity)
	if err != nil {
		return err
	}
	log.Infof("found %s", filepath.Base(bundle))

	destination := filepath.Join(this.applications, filepath.Base(bundle))
	if this.filesystem.DirectoryExists(destination) {
		log.Infof("replacing existing %s", destination)
		if err := this.filesystem.RemoveAll(destination); err != nil {
			return contracts.NewFailure(contracts.ExitCopyFailed,
				"could not remove existing %s: %v", destination, err)
		}
	}

	log.Infof("copying %s to %s", filepath.Base(bundle), this.applications)
	if err := this.copier.CopyDirectory(bundle, destination); err != nil {
		return contracts.NewFailure(contracts.ExitCopyFailed,
			"copy to %s failed: %v", this.applications, err)
	}

	if !this.filesystem.DirectoryExists(destination) {
		log.Warnf("%s not found after the copy reported success", destination)
	}

	if err := this.quarantine.StripQuarantine(destination); err != nil {
		log.Debugf("quarantine strip failed: %v", err)
	}
	log.Info("application installed")
	return nil
}

// locateBundle prefers an exact installIdentity match directly under
// the mount point, then falls back to the first *.app found within two
// directory levels, in traversal order.
func (this *DiskImageStrategy) locateBundle(mountPoint, installIdentity string) (string, error) {
	if installIdentity != "" {
		candidate := filepath.Join(mountPoint, installIdentity)
		if this.filesystem.DirectoryExists(candidate) {
			return candidate, nil
		}
	}
	if found := this.findBundle(mountPoint, bundleSearchDepth); found != "" {
		return found, nil
	}
	return "", contracts.NewFailure(contracts.ExitApplicationNotFound,
		"no application bundle found in the disk image")
}

func (this *DiskImageStrategy) findBundle(directory string, depth int) string {
	entries, err := this.filesystem.ListDirectory(directory)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		full := filepath.Join(directory, entry)
		if !this.filesystem.DirectoryExists(full) {
			continue
		}
		if strings.HasSuffix(entry, bundleSuffix) {
			return full
		}
		if depth > 1 {
			if found := this.findBundle(full, depth-1); found != "" {
				return found
			}
		}
	}
	return ""
}
