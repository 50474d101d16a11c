package core

import (
	"errors"
	"io"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/endpointops/deploypkg/shell"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

var errTransient = errors.New("transient network failure")

///////////////////////////////////////////////////////////////////////

type FakeVersionReader struct {
	version string
	err     error
}

func (this *FakeVersionReader) ProductVersion() (string, error) {
	return this.version, this.err
}

type FakeReceipts struct {
	receipts map[string]bool
	err      error
	queries  []string
}

func NewFakeReceipts() *FakeReceipts {
	return &FakeReceipts{receipts: make(map[string]bool)}
}

func (this *FakeReceipts) HasReceipt(identifier string) (bool, error) {
	this.queries = append(this.queries, identifier)
	return this.receipts[identifier], this.err
}

// FakeDownloader writes a file of the configured size into the
// in-memory filesystem, failing the first `failures` attempts.
type FakeDownloader struct {
	filesystem *shell.InMemoryFileSystem
	size       int64
	failures   int
	err        error
	attempts   int
	urls       []string
}

func (this *FakeDownloader) Download(url, destination string) error {
	this.attempts++
	this.urls = append(this.urls, url)
	if this.err != nil {
		return this.err
	}
	if this.attempts <= this.failures {
		return errTransient
	}
	this.filesystem.WriteFile(destination, this.size)
	return nil
}

type FakeDigest struct {
	digest string
	err    error
}

func (this *FakeDigest) FileDigest(path string) (string, error) {
	return this.digest, this.err
}

type FakeSignatureChecker struct {
	err   error
	calls int
}

func (this *FakeSignatureChecker) Assess(path string) error {
	this.calls++
	return this.err
}

type FakeInstaller struct {
	err     error
	targets []string
}

func (this *FakeInstaller) Install(packagePath, targetVolume string) error {
	this.targets = append(this.targets, packagePath+" -> "+targetVolume)
	return this.err
}

type FakeMounter struct {
	mountPoint string
	attachErr  error
	detachErr  error
	attached   []string
	detached   []string
}

func (this *FakeMounter) Attach(imagePath string) (string, error) {
	this.attached = append(this.attached, imagePath)
	return this.mountPoint, this.attachErr
}

func (this *FakeMounter) Detach(mountPoint string) error {
	this.detached = append(this.detached, mountPoint)
	return this.detachErr
}

// FakeCopier delegates to the in-memory filesystem unless primed with
// an error.
type FakeCopier struct {
	filesystem *shell.InMemoryFileSystem
	err        error
	copies     []string
}

func (this *FakeCopier) CopyDirectory(source, destination string) error {
	this.copies = append(this.copies, source+" -> "+destination)
	if this.err != nil {
		return this.err
	}
	return this.filesystem.CopyDirectory(source, destination)
}

type FakeQuarantine struct {
	err      error
	stripped []string
}

func (this *FakeQuarantine) StripQuarantine(path string) error {
	this.stripped = append(this.stripped, path)
	return this.err
}
