package shell

import (
	"fmt"
	"os/exec"
)

// MacPackageInstaller drives the native installer utility.
type MacPackageInstaller struct{}

func NewMacPackageInstaller() *MacPackageInstaller {
	return &MacPackageInstaller{}
}

func (this *MacPackageInstaller) Install(packagePath, targetVolume string) error {
	output, err := exec.Command("/usr/sbin/installer",
		"-pkg", packagePath, "-target", targetVolume).CombinedOutput()
	if err != nil {
		return fmt.Errorf("installer: %w: %s", err, string(output))
	}
	return nil
}
