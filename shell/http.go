package shell

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

// connectTimeout bounds connection establishment only; the transfer
// itself has no total-time ceiling.
const connectTimeout = 20 * time.Second

type HTTPDownloader struct {
	client *http.Client
}

func NewHTTPDownloader() *HTTPDownloader {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: connectTimeout}).DialContext,
		TLSHandshakeTimeout: connectTimeout,
	}
	return &HTTPDownloader{client: &http.Client{Transport: transport}}
}

// Download writes the response body to destination, truncating any
// prior attempt's partial result. Redirects are followed by the client;
// any non-2xx status is an error.
func (this *HTTPDownloader) Download(url, destination string) error {
	response, err := this.client.Get(url)
	if err != nil {
		return err
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("unexpected status: %s", response.Status)
	}

	file, err := os.Create(destination)
	if err != nil {
		return err
	}
	_, err = file.ReadFrom(response.Body)
	closeErr := file.Close()
	if err != nil {
		return err
	}
	return closeErr
}
