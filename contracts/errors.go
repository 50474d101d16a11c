package contracts

import (
	"errors"
	"fmt"
)

// Exit codes are the contract with the invoking management agent, which
// only inspects this number and the log.
const (
	ExitSuccess             = 0
	ExitMissingInput        = 10 // missing URL or unresolvable artifact type
	ExitDownloadFailed      = 11
	ExitDigestMismatch      = 12
	ExitSignatureInvalid    = 13 // reserved; signature failure is advisory and never raised today
	ExitInstallerFailed     = 14
	ExitUnsupportedOS       = 15
	ExitMountFailed         = 16
	ExitApplicationNotFound = 17
	ExitCopyFailed          = 18
)

// Failure is a terminal pipeline error bound to one fixed exit code.
type Failure struct {
	Code  int
	cause error
}

func NewFailure(code int, format string, args ...interface{}) *Failure {
	return &Failure{Code: code, cause: fmt.Errorf(format, args...)}
}

func (this *Failure) Error() string { return this.cause.Error() }
func (this *Failure) Unwrap() error { return errors.Unwrap(this.cause) }

// ExitCode resolves the process exit code for err. Errors that never
// passed through the failure taxonomy map to a generic non-zero code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Code
	}
	return 1
}
