package core

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/endpointops/deploypkg/contracts"
)

// IntegrityVerifier compares the artifact's SHA-256 digest against the
// expected value. Un-verified installs are permitted: when no digest
// was supplied the check is skipped with a warning.
type IntegrityVerifier struct {
	digests contracts.DigestComputer
}

func NewIntegrityVerifier(digests contracts.DigestComputer) *IntegrityVerifier {
	return &IntegrityVerifier{digests: digests}
}

func (this *IntegrityVerifier) Verify(path, expectedDigest string) error {
	if expectedDigest == "" {
		log.Warn("no expected checksum provided; continuing without verification")
		return nil
	}
	actual, err := this.digests.FileDigest(path)
	if err != nil {
		return contracts.NewFailure(contracts.ExitDigestMismatch,
			"could not compute artifact checksum: %v", err)
	}
	if !strings.EqualFold(actual, expectedDigest) {
		log.Errorf("checksum mismatch: expected %s, computed %s",
			strings.ToLower(expectedDigest), strings.ToLower(actual))
		return contracts.NewFailure(contracts.ExitDigestMismatch,
			"artifact checksum does not match the expected value")
	}
	log.Infof("checksum verified (%s)", strings.ToLower(actual))
	return nil
}
