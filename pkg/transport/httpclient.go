package transport

import (
	"compress/flate"
	"compress/gzip"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/will8807/ggg-luck/internal/logger"
)

var httpClient *http.Client

// getExtraCABundle returns an additional CA bundle if one has been
// configured, for corporate proxies that re-sign TLS traffic
func getExtraCABundle() ([]byte, error) {
	bundlePath := os.Getenv("GGG_LUCK_CA_BUNDLE")
	if bundlePath == "" {
		return nil, fmt.Errorf("no CA bundle configured")
	}

	caCert, err := os.ReadFile(bundlePath)
	if err != nil {
		logger.Warn("Failed to read CA bundle", err)
		return nil, err
	}

	return caCert, nil
}

// GetCustomHTTPClient returns a shared HTTP client with custom TLS configuration
func GetCustomHTTPClient() (*http.Client, error) {
	if httpClient != nil {
		return httpClient, nil
	}
	rootCAs, err := x509.SystemCertPool()
	if err != nil {
		logger.Warn("Failed to get system cert pool", err)
		rootCAs = x509.NewCertPool()
	}

	extraCert, err := getExtraCABundle()
	if err == nil {
		if ok := rootCAs.AppendCertsFromPEM(extraCert); !ok {
			logger.Warn("Failed to append extra CA certificate")
		} else {
			logger.Info("Added extra CA certificate to root CAs")
		}
	}

	customTransport := &http.Transport{
		TLSClientConfig: &tls.Config{
			RootCAs: rootCAs,
		},
		Proxy: http.ProxyFromEnvironment,
	}

	client := &http.Client{
		Transport: customTransport,
		Timeout:   30 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			return nil
		},
	}
	httpClient = client
	return client, nil
}

// GetHtml fetches a page body, transparently decoding any Content-Encoding
func GetHtml(htmlUrl string) ([]byte, error) {
	req, err := http.NewRequest("GET", htmlUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Headers that make the request look like a browser
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Referer", "http://www.google.com/")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	return Do(req)
}

// GetWithBearer fetches a URL with an OAuth bearer token, decoding any
// Content-Encoding. Used for authenticated fantasy API requests.
func GetWithBearer(apiUrl string, token string) ([]byte, error) {
	req, err := http.NewRequest("GET", apiUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")

	return Do(req)
}

// PostForm posts URL-encoded form values and returns the response body.
// Used for OAuth token exchange.
func PostForm(postUrl string, values url.Values) ([]byte, error) {
	req, err := http.NewRequest("POST", postUrl, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return Do(req)
}

// Do executes the request on the shared client and returns the decoded body
func Do(req *http.Request) ([]byte, error) {
	client, err := GetCustomHTTPClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request returned error status %d", resp.StatusCode)
	}

	// handle compression (Content-Encoding)
	var reader io.ReadCloser = resp.Body
	contentEncoding := resp.Header.Get("Content-Encoding")
	switch contentEncoding {
	case "gzip":
		logger.Debug("Handling gzip compressed content")
		reader, err = NewGzipReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	case "deflate":
		logger.Debug("Handling deflate compressed content")
		reader, err = NewDeflateReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create deflate reader: %w", err)
		}
		defer reader.Close()
	case "br":
		logger.Debug("Handling brotli compressed content")
		reader, err = NewBrotliReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create brotli reader: %w", err)
		}
		defer reader.Close()
	default:
		if contentEncoding != "" {
			logger.Warn("Unknown content encoding:", contentEncoding)
		}
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	return data, nil
}

// NewGzipReader creates a gzip reader from the provided io.ReadCloser
func NewGzipReader(r io.ReadCloser) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// NewDeflateReader creates a deflate reader from the provided io.ReadCloser
func NewDeflateReader(r io.ReadCloser) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}

// NewBrotliReader creates a brotli reader from the provided io.ReadCloser
func NewBrotliReader(r io.ReadCloser) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}
