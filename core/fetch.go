package core

import (
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"github.com/endpointops/deploypkg/contracts"
)

const (
	downloadAttempts = 3
	retryInterval    = 3 * time.Second
)

// Fetcher downloads the artifact with a bounded retry count and then
// confirms a non-empty file actually landed, independent of the
// transport's own success signal.
type Fetcher struct {
	downloader contracts.Downloader
	filesystem contracts.FileChecker
	interval   time.Duration
}

func NewFetcher(downloader contracts.Downloader, filesystem contracts.FileChecker) *Fetcher {
	return &Fetcher{downloader: downloader, filesystem: filesystem, interval: retryInterval}
}

func (this *Fetcher) Fetch(url, destination string) error {
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(this.interval), downloadAttempts-1)
	notify := func(err error, wait time.Duration) {
		log.Warnf("download failed, retry in %s: %v", wait, err)
	}
	err := backoff.RetryNotify(func() error {
		return this.downloader.Download(url, destination)
	}, policy, notify)
	if err != nil {
		return contracts.NewFailure(contracts.ExitDownloadFailed,
			"download failed after %d attempts: %w", downloadAttempts, err)
	}
	size, err := this.filesystem.FileSize(destination)
	if err != nil {
		return contracts.NewFailure(contracts.ExitDownloadFailed,
			"downloaded artifact missing at %s: %v", destination, err)
	}
	if size == 0 {
		return contracts.NewFailure(contracts.ExitDownloadFailed,
			"downloaded artifact at %s is empty", destination)
	}
	log.Infof("downloaded %d bytes", size)
	return nil
}
