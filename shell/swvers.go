package shell

import (
	"fmt"
	"os/exec"
	"strings"
)

type SystemVersionReader struct{}

func NewSystemVersionReader() *SystemVersionReader {
	return &SystemVersionReader{}
}

func (this *SystemVersionReader) ProductVersion() (string, error) {
	output, err := exec.Command("/usr/bin/sw_vers", "-productVersion").Output()
	if err != nil {
		return "", fmt.Errorf("sw_vers: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
