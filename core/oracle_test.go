package core

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/endpointops/deploypkg/contracts"
	"github.com/endpointops/deploypkg/shell"
)

func TestIdempotencyOracleFixture(t *testing.T) {
	gunit.Run(new(IdempotencyOracleFixture), t)
}

type IdempotencyOracleFixture struct {
	*gunit.Fixture

	receipts   *FakeReceipts
	filesystem *shell.InMemoryFileSystem
	oracle     *IdempotencyOracle
}

func (this *IdempotencyOracleFixture) Setup() {
	this.receipts = NewFakeReceipts()
	this.filesystem = shell.NewInMemoryFileSystem()
	this.oracle = NewIdempotencyOracle(this.receipts, this.filesystem, "/Applications")
}

func (this *IdempotencyOracleFixture) TestEmptyIdentityNeverShortCircuits() {
	this.receipts.receipts["com.example.app"] = true

	this.So(this.oracle.AlreadyInstalled(contracts.KindPackage, ""), should.BeFalse)
	this.So(this.oracle.AlreadyInstalled(contracts.KindDiskImage, ""), should.BeFalse)
	this.So(this.receipts.queries, should.BeEmpty)
}

func (this *IdempotencyOracleFixture) TestPackageReceiptFound() {
	this.receipts.receipts["com.example.app"] = true

	this.So(this.oracle.AlreadyInstalled(contracts.KindPackage, "com.example.app"), should.BeTrue)
}

func (this *IdempotencyOracleFixture) TestPackageReceiptAbsent() {
	this.So(this.oracle.AlreadyInstalled(contracts.KindPackage, "com.example.app"), should.BeFalse)
}

func (this *IdempotencyOracleFixture) TestReceiptQueryErrorMeansNotInstalled() {
	this.receipts.receipts["com.example.app"] = true
	this.receipts.err = errors.New("database locked")

	this.So(this.oracle.AlreadyInstalled(contracts.KindPackage, "com.example.app"), should.BeFalse)
}

func (this *IdempotencyOracleFixture) TestBundlePresentInApplications() {
	this.filesystem.MkDir("/Applications/Demo.app")

	this.So(this.oracle.AlreadyInstalled(contracts.KindDiskImage, "Demo.app"), should.BeTrue)
}

func (this *IdempotencyOracleFixture) TestBundleAbsentFromApplications() {
	this.So(this.oracle.AlreadyInstalled(contracts.KindDiskImage, "Demo.app"), should.BeFalse)
}
