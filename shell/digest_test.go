package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestSHA256DigestFixture(t *testing.T) {
	gunit.Run(new(SHA256DigestFixture), t)
}

type SHA256DigestFixture struct {
	*gunit.Fixture

	root    string
	digests *SHA256Digest
}

func (this *SHA256DigestFixture) Setup() {
	root, err := os.MkdirTemp("", "deploypkg-test-")
	this.So(err, should.BeNil)
	this.root = root
	this.digests = NewSHA256Digest()
}

func (this *SHA256DigestFixture) Teardown() {
	_ = os.RemoveAll(this.root)
}

func (this *SHA256DigestFixture) TestKnownDigest() {
	file := filepath.Join(this.root, "artifact")
	this.So(os.WriteFile(file, []byte("abc"), 0644), should.BeNil)

	digest, err := this.digests.FileDigest(file)

	this.So(err, should.BeNil)
	this.So(digest, should.Equal, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
}

func (this *SHA256DigestFixture) TestAbsentFileFails() {
	_, err := this.digests.FileDigest(filepath.Join(this.root, "absent"))

	this.So(err, should.NotBeNil)
}
