package shell

import (
	"fmt"
	"os/exec"
)

const quarantineAttribute = "com.apple.quarantine"

// XattrQuarantineStripper removes the download-provenance attribute so
// first launch does not trigger a gatekeeper prompt.
type XattrQuarantineStripper struct{}

func NewXattrQuarantineStripper() *XattrQuarantineStripper {
	return &XattrQuarantineStripper{}
}

func (this *XattrQuarantineStripper) StripQuarantine(path string) error {
	output, err := exec.Command("/usr/bin/xattr", "-dr", quarantineAttribute, path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("xattr: %w: %s", err, string(output))
	}
	return nil
}
