package resource

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Resolve resolves ref against base. A bare filesystem path as base is
// treated like a file URL; an empty base returns ref unchanged.
func Resolve(base, ref string) string {
	if base == "" {
		return ref
	}
	if strings.HasPrefix(ref, "#") {
		// fragment-only references stay within the base document
		return StripFragment(base) + ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil || r.IsAbs() {
		return ref
	}
	if b.Scheme == "" {
		// bare filesystem path: resolve relative to the base's directory
		if strings.HasPrefix(ref, "/") {
			return ref
		}
		dir, _ := filepath.Split(StripFragment(base))
		return dir + ref
	}
	return b.ResolveReference(r).String()
}

// StripFragment returns the URL without its #fragment suffix.
func StripFragment(rawurl string) string {
	if i := strings.IndexByte(rawurl, '#'); i >= 0 {
		return rawurl[:i]
	}
	return rawurl
}

// Fragment returns the #fragment suffix of a URL, without the hash sign,
// or "" if the URL carries none.
func Fragment(rawurl string) string {
	if i := strings.IndexByte(rawurl, '#'); i >= 0 {
		return rawurl[i+1:]
	}
	return ""
}
