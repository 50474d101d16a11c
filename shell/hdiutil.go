package shell

import (
	"fmt"
	"os/exec"
	"strings"
)

const volumesRoot = "/Volumes/"

// HdiutilMounter attaches and detaches disk images. Images mount
// non-browsable and non-auto-opening; mount-time checksum verification
// is skipped since the digest was already checked when one was given.
type HdiutilMounter struct{}

func NewHdiutilMounter() *HdiutilMounter {
	return &HdiutilMounter{}
}

func (this *HdiutilMounter) Attach(imagePath string) (string, error) {
	output, err := exec.Command("/usr/bin/hdiutil", "attach", imagePath,
		"-nobrowse", "-noautoopen", "-noverify").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("hdiutil attach: %w: %s", err, string(output))
	}
	mountPoint, err := ParseAttachOutput(string(output))
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, string(output))
	}
	return mountPoint, nil
}

func (this *HdiutilMounter) Detach(mountPoint string) error {
	output, err := exec.Command("/usr/bin/hdiutil", "detach", mountPoint, "-force").CombinedOutput()
	if err != nil {
		return fmt.Errorf("hdiutil detach: %w: %s", err, string(output))
	}
	return nil
}

// ParseAttachOutput extracts the mount point from hdiutil attach
// output. Lines look like:
//
//	/dev/disk4s2   Apple_HFS   /Volumes/Demo
//
// An image producing several volumes lists one per line; the last one
// wins.
func ParseAttachOutput(output string) (string, error) {
	mountPoint := ""
	for _, line := range strings.Split(output, "\n") {
		index := strings.Index(line, volumesRoot)
		if index < 0 {
			continue
		}
		candidate := strings.TrimSpace(line[index:])
		if candidate != "" {
			mountPoint = candidate
		}
	}
	if mountPoint == "" {
		return "", fmt.Errorf("no mount point under %s in attach output", volumesRoot)
	}
	return mountPoint, nil
}
