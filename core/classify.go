package core

import (
	"net/url"
	"path"
	"strings"

	"github.com/endpointops/deploypkg/contracts"
)

// Classify resolves the artifact kind from the explicit override when
// present, otherwise from the URL suffix. It never validates that an
// override matches the artifact actually behind the URL.
func Classify(request contracts.InstallRequest) (contracts.ArtifactKind, error) {
	if request.ForcedKind != "" {
		kind, ok := contracts.ParseArtifactKind(request.ForcedKind)
		if !ok {
			return contracts.KindUnknown, contracts.NewFailure(contracts.ExitMissingInput,
				"unrecognized artifact type override %q (expected pkg or dmg)", request.ForcedKind)
		}
		return kind, nil
	}
	switch strings.ToLower(path.Ext(urlPath(request.SourceURL))) {
	case ".pkg":
		return contracts.KindPackage, nil
	case ".dmg":
		return contracts.KindDiskImage, nil
	}
	return contracts.KindUnknown, contracts.NewFailure(contracts.ExitMissingInput,
		"cannot determine artifact type from %q; pass an explicit type", request.SourceURL)
}

func urlPath(raw string) string {
	if parsed, err := url.Parse(raw); err == nil && parsed.Path != "" {
		return parsed.Path
	}
	if index := strings.IndexAny(raw, "?#"); index >= 0 {
		return raw[:index]
	}
	return raw
}
