// ABOUTME: Campus document store: YAML/JSON files on disk and remote fetch
// ABOUTME: Honors ALL_PROXY ssh+socks5 tunnels and deduplicates concurrent fetches

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	proxy "github.com/cloudfoundry/socks5-proxy"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

// maxDocumentBytes caps remote campus documents at 10 MB
const maxDocumentBytes = 10 << 20

// DocumentStore loads and saves campus documents locally and over HTTP(S)
type DocumentStore struct {
	client *http.Client
	group  singleflight.Group
}

// NewDocumentStore creates a document store. When ALL_PROXY names an
// ssh+socks5 tunnel, remote fetches dial through it.
func NewDocumentStore(timeout time.Duration) *DocumentStore {
	transport := &http.Transport{}
	if allProxy := os.Getenv("ALL_PROXY"); allProxy != "" {
		if dialContextFunc := createSOCKS5DialContextFunc(allProxy); dialContextFunc != nil {
			transport.DialContext = dialContextFunc
		}
	}

	return &DocumentStore{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (ds *DocumentStore) SetHTTPClient(client *http.Client) {
	ds.client = client
}

// Load reads a campus document from disk. The extension picks the codec;
// anything that is not .json parses as YAML.
func (ds *DocumentStore) Load(path string) (*models.Campus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campus file: %w", err)
	}
	campus, err := decodeCampus(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return campus, nil
}

// Save writes a campus document to disk, YAML by default and JSON for
// .json paths. Parent directories are created as needed.
func (ds *DocumentStore) Save(path string, c *models.Campus) error {
	if c == nil {
		return fmt.Errorf("cannot save a nil campus")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("failed to encode campus: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write campus file: %w", err)
	}
	return nil
}

// Fetch retrieves a campus document over HTTP(S). Concurrent fetches of the
// same URL share one request.
func (ds *DocumentStore) Fetch(ctx context.Context, rawURL string) (*models.Campus, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid campus URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported campus URL scheme %q", u.Scheme)
	}

	v, err, shared := ds.group.Do(rawURL, func() (interface{}, error) {
		return ds.fetch(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.Debug("Campus fetch deduplicated", "url", rawURL)
	}

	// Each caller gets its own tree when the result was shared.
	campus := v.(*models.Campus)
	if shared {
		campus = campus.Clone()
	}
	return campus, nil
}

func (ds *DocumentStore) fetch(ctx context.Context, u *url.URL) (*models.Campus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch request: %w", err)
	}
	req.Header.Set("Accept", "application/yaml, application/json")

	resp, err := ds.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campus document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("campus fetch returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read campus document: %w", err)
	}
	if len(data) > maxDocumentBytes {
		return nil, fmt.Errorf("campus document exceeds %d MB limit", maxDocumentBytes>>20)
	}

	asJSON := strings.Contains(resp.Header.Get("Content-Type"), "json") ||
		strings.EqualFold(filepath.Ext(u.Path), ".json")
	campus, err := decodeCampus(data, asJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse campus document from %s: %w", u.Host, err)
	}
	return campus, nil
}

// decodeCampus parses campus bytes, preferring YAML which also accepts JSON
func decodeCampus(data []byte, asJSON bool) (*models.Campus, error) {
	var campus models.Campus
	if asJSON {
		if err := json.Unmarshal(data, &campus); err != nil {
			return nil, err
		}
		return &campus, nil
	}
	if err := yaml.Unmarshal(data, &campus); err != nil {
		return nil, err
	}
	return &campus, nil
}

// createSOCKS5DialContextFunc creates a dial function for SSH+SOCKS5 proxy connections.
// Supports format: ssh+socks5://user@host:port?private-key=/path/to/key
func createSOCKS5DialContextFunc(allProxy string) func(ctx context.Context, network, address string) (net.Conn, error) {
	// Strip ssh+ prefix if present
	allProxy = strings.TrimPrefix(allProxy, "ssh+")

	proxyURL, err := url.Parse(allProxy)
	if err != nil {
		slog.Error("Failed to parse ALL_PROXY URL", "error", err)
		return nil
	}

	queryMap, err := url.ParseQuery(proxyURL.RawQuery)
	if err != nil {
		slog.Error("Failed to parse ALL_PROXY query params", "error", err)
		return nil
	}

	username := ""
	if proxyURL.User != nil {
		username = proxyURL.User.Username()
	}

	proxySSHKeyPath := queryMap.Get("private-key")
	if proxySSHKeyPath == "" {
		slog.Error("ALL_PROXY missing required 'private-key' query param")
		return nil
	}

	proxySSHKey, err := os.ReadFile(proxySSHKeyPath)
	if err != nil {
		slog.Error("Failed to read SSH private key", "path", proxySSHKeyPath, "error", err)
		return nil
	}

	socks5Proxy := proxy.NewSocks5Proxy(proxy.NewHostKey(), log.Default(), 1*time.Minute)

	var (
		dialer proxy.DialFunc
		mut    sync.RWMutex
	)

	return func(ctx context.Context, network, address string) (net.Conn, error) {
		mut.RLock()
		haveDialer := dialer != nil
		mut.RUnlock()

		if haveDialer {
			return dialer(network, address)
		}

		mut.Lock()
		defer mut.Unlock()
		if dialer == nil {
			proxyDialer, err := socks5Proxy.Dialer(username, string(proxySSHKey), proxyURL.Host)
			if err != nil {
				return nil, fmt.Errorf("error creating SOCKS5 dialer: %w", err)
			}
			dialer = proxyDialer
		}
		return dialer(network, address)
	}
}
