package main

import (
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/endpointops/deploypkg/contracts"
)

func TestConfigFixture(t *testing.T) {
	gunit.Run(new(ConfigFixture), t)
}

type ConfigFixture struct {
	*gunit.Fixture
}

func (this *ConfigFixture) TestAllParametersInOrder() {
	request := parseInstallRequest([]string{
		"https://example.com/app.pkg",
		"abc123",
		"Demo",
		"com.example.app",
		"12.0",
		"pkg",
	}, false)

	this.So(request, should.Resemble, contracts.InstallRequest{
		SourceURL:        "https://example.com/app.pkg",
		ExpectedDigest:   "abc123",
		DisplayName:      "Demo",
		InstallIdentity:  "com.example.app",
		MinimumOSVersion: "12.0",
		ForcedKind:       "pkg",
	})
}

func (this *ConfigFixture) TestDefaultsWhenOnlyURLIsGiven() {
	request := parseInstallRequest([]string{"https://example.com/app.dmg"}, false)

	this.So(request.SourceURL, should.Equal, "https://example.com/app.dmg")
	this.So(request.DisplayName, should.Equal, "Package")
	this.So(request.ExpectedDigest, should.BeBlank)
	this.So(request.InstallIdentity, should.BeBlank)
	this.So(request.MinimumOSVersion, should.BeBlank)
	this.So(request.ForcedKind, should.BeBlank)
}

func (this *ConfigFixture) TestEmptyParameterKeepsItsDefault() {
	request := parseInstallRequest([]string{"https://example.com/app.dmg", "", ""}, false)

	this.So(request.DisplayName, should.Equal, "Package")
	this.So(request.ExpectedDigest, should.BeBlank)
}

func (this *ConfigFixture) TestNoParametersYieldsEmptyURL() {
	request := parseInstallRequest(nil, false)

	this.So(request.SourceURL, should.BeBlank)
}

func (this *ConfigFixture) TestJamfModeSkipsTheReservedTriple() {
	request := parseInstallRequest([]string{
		"/", "MAC-0042", "jdoe",
		"https://example.com/app.dmg", "abc123", "Demo",
	}, true)

	this.So(request.SourceURL, should.Equal, "https://example.com/app.dmg")
	this.So(request.ExpectedDigest, should.Equal, "abc123")
	this.So(request.DisplayName, should.Equal, "Demo")
}

func (this *ConfigFixture) TestJamfModeWithTooFewParametersYieldsEmptyRequest() {
	request := parseInstallRequest([]string{"/", "MAC-0042"}, true)

	this.So(request.SourceURL, should.BeBlank)
	this.So(request.DisplayName, should.Equal, "Package")
}
