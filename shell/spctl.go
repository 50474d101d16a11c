package shell

import (
	"fmt"
	"os/exec"
)

// GatekeeperChecker runs the advisory signature assessment. Callers
// treat a failure as a warning, never a gate.
type GatekeeperChecker struct{}

func NewGatekeeperChecker() *GatekeeperChecker {
	return &GatekeeperChecker{}
}

func (this *GatekeeperChecker) Assess(path string) error {
	output, err := exec.Command("/usr/sbin/spctl",
		"--assess", "--type", "install", path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("spctl: %w: %s", err, string(output))
	}
	return nil
}
