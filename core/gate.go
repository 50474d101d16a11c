package core

import (
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/endpointops/deploypkg/contracts"
)

// PreconditionGate rejects a request before any network or disk
// activity happens on its behalf.
type PreconditionGate struct {
	versions contracts.OSVersionReader
}

func NewPreconditionGate(versions contracts.OSVersionReader) *PreconditionGate {
	return &PreconditionGate{versions: versions}
}

func (this *PreconditionGate) RequireURL(request contracts.InstallRequest) error {
	if strings.TrimSpace(request.SourceURL) == "" {
		return contracts.NewFailure(contracts.ExitMissingInput, "no download URL was provided")
	}
	return nil
}

// RequireMinimumOS compares dotted version components numerically,
// left to right. Equal versions pass.
func (this *PreconditionGate) RequireMinimumOS(request contracts.InstallRequest) error {
	if request.MinimumOSVersion == "" {
		return nil
	}
	required, err := goversion.NewVersion(request.MinimumOSVersion)
	if err != nil {
		return contracts.NewFailure(contracts.ExitUnsupportedOS,
			"unparsable minimum OS version %q: %v", request.MinimumOSVersion, err)
	}
	raw, err := this.versions.ProductVersion()
	if err != nil {
		return contracts.NewFailure(contracts.ExitUnsupportedOS,
			"could not determine the OS version: %v", err)
	}
	current, err := goversion.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return contracts.NewFailure(contracts.ExitUnsupportedOS,
			"unparsable OS version %q: %v", raw, err)
	}
	if current.LessThan(required) {
		return contracts.NewFailure(contracts.ExitUnsupportedOS,
			"OS version %s is below the required minimum %s", current, required)
	}
	return nil
}
