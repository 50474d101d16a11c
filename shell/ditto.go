package shell

import (
	"fmt"
	"os/exec"
)

// DittoCopier copies directory trees with ditto, which preserves
// bundle structure, resource forks, and permissions.
type DittoCopier struct{}

func NewDittoCopier() *DittoCopier {
	return &DittoCopier{}
}

func (this *DittoCopier) CopyDirectory(source, destination string) error {
	output, err := exec.Command("/usr/bin/ditto", source, destination).CombinedOutput()
	if err != nil {
		return fmt.Errorf("ditto: %w: %s", err, string(output))
	}
	return nil
}
