package resource

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Fetcher retrieves the raw bytes behind a URL. The resource kind
// distinguishes the fetch context (e.g. "image/svg+xml" for documents,
// "text/css" for stylesheets, "image/*" for embedded images) for policy
// decisions made by the fetcher; the tree builder itself attaches no
// meaning to it. A fetcher owns any network-level timeout or retry policy.
type Fetcher func(url string, resourceKind string) ([]byte, error)

// DefaultFetcher returns a fetcher handling http(s) URLs, file URLs, bare
// filesystem paths and data URLs. It is bound at the outermost entry point
// only; nested loads always reuse the fetcher they were constructed with.
func DefaultFetcher() Fetcher {
	client := &http.Client{Timeout: 10 * time.Second}
	return func(rawurl string, resourceKind string) ([]byte, error) {
		tracer().Debugf("fetching %q as %s", rawurl, resourceKind)
		u, err := url.Parse(rawurl)
		if err != nil {
			return nil, fmt.Errorf("resource: invalid URL %q: %w", rawurl, err)
		}
		switch u.Scheme {
		case "http", "https":
			return fetchHTTP(client, rawurl, resourceKind)
		case "data":
			return decodeDataURL(rawurl)
		case "file":
			return os.ReadFile(filePath(u))
		case "":
			return os.ReadFile(rawurl)
		}
		return nil, fmt.Errorf("resource: unsupported URL scheme %q", u.Scheme)
	}
}

func fetchHTTP(client *http.Client, rawurl, resourceKind string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, err
	}
	if resourceKind != "" {
		req.Header.Set("Accept", resourceKind)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("resource: GET %s: unexpected status %s", rawurl, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func filePath(u *url.URL) string {
	if u.Path != "" {
		return u.Path
	}
	return u.Opaque
}

// decodeDataURL decodes an RFC 2397 data URL, base64 or URL-encoded.
func decodeDataURL(rawurl string) ([]byte, error) {
	rest := strings.TrimPrefix(rawurl, "data:")
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return nil, fmt.Errorf("resource: malformed data URL")
	}
	meta, data := rest[:comma], rest[comma+1:]
	if strings.HasSuffix(meta, ";base64") {
		return base64.StdEncoding.DecodeString(data)
	}
	decoded, err := url.PathUnescape(data)
	if err != nil {
		return nil, err
	}
	return []byte(decoded), nil
}
