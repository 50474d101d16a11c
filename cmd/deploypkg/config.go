package main

import "github.com/endpointops/deploypkg/contracts"

const defaultDisplayName = "Package"

// jamfOffset skips the mount-point, computer-name, and username
// parameters the management platform prepends before script arguments.
const jamfOffset = 3

// parseInstallRequest maps ordered positional parameters onto the
// request: url, sha256, display name, install identity, minimum OS
// version, forced artifact type. Empty parameters keep their defaults;
// validation belongs to the precondition gate, not here.
func parseInstallRequest(args []string, jamf bool) contracts.InstallRequest {
	if jamf {
		if len(args) > jamfOffset {
			args = args[jamfOffset:]
		} else {
			args = nil
		}
	}
	request := contracts.InstallRequest{DisplayName: defaultDisplayName}
	targets := []*string{
		&request.SourceURL,
		&request.ExpectedDigest,
		&request.DisplayName,
		&request.InstallIdentity,
		&request.MinimumOSVersion,
		&request.ForcedKind,
	}
	for index, target := range targets {
		if index < len(args) && args[index] != "" {
			*target = args[index]
		}
	}
	return request
}
