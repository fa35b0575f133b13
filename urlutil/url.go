package urlutil

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultPort is used when the URL carries no port, or when the port
	// run after ':' does not parse as an unsigned 16-bit integer.
	DefaultPort = 80

	// schemeSeparator splits the scheme from the rest of the URL.
	schemeSeparator = "://"
)

// URL is a parsed HTTP URL. It is immutable: construct it with Parse and
// read its parts through the accessor methods. The zero value is not
// meaningful.
type URL struct {
	raw      string
	scheme   string
	host     string
	port     int
	path     string
	query    string
	hasQuery bool
}

// UnsupportedSchemeError is returned by Parse when the scheme is anything
// other than "http". Scheme holds the token that was found; it is empty when
// the input had no "://" separator at all.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("Unsupported scheme: %s. Only 'http' is allowed.", e.Scheme)
}

// Parse decomposes rawURL into scheme, host, port, path, and query.
// The scheme must be exactly "http"; that is the only way Parse can fail.
// Every other irregularity degrades to a default: missing or malformed ports
// become DefaultPort, a missing path becomes "/", and the host may be empty.
//
// Parse is deterministic and side-effect-free. It performs no network access,
// no percent-decoding, and no RFC 3986 validation.
func Parse(rawURL string) (*URL, error) {
	scheme, rest, found := strings.Cut(rawURL, schemeSeparator)
	if !found {
		scheme = ""
	}
	if scheme != "http" {
		return nil, &UnsupportedSchemeError{Scheme: scheme}
	}

	u := &URL{
		raw:    rawURL,
		scheme: scheme,
		port:   DefaultPort,
		path:   "/",
	}

	// Single decomposition pass: peel the query off the tail, then the
	// path, leaving the authority. Order matters so that a '?' before any
	// '/' still starts the query ("http://host?a=1" has path "/").
	if q := strings.IndexByte(rest, '?'); q >= 0 {
		u.query = rest[q+1:]
		u.hasQuery = true
		rest = rest[:q]
	}

	authority := rest
	if slash := strings.IndexByte(rest, '/'); slash >= 0 {
		u.path = rest[slash:]
		authority = rest[:slash]
	}

	u.host = authority
	if colon := strings.IndexByte(authority, ':'); colon >= 0 {
		u.host = authority[:colon]
		if port, err := strconv.ParseUint(authority[colon+1:], 10, 16); err == nil {
			u.port = int(port)
		}
	}

	return u, nil
}

// Raw returns the original input string, verbatim.
func (u *URL) Raw() string { return u.raw }

// Scheme returns the URL scheme, always "http" for a value built by Parse.
func (u *URL) Scheme() string { return u.scheme }

// Host returns the host component; it may be empty.
func (u *URL) Host() string { return u.host }

// Port returns the port, in [0, 65535]. It is DefaultPort unless the input
// carried an explicit port that parsed as an unsigned 16-bit integer.
func (u *URL) Port() int { return u.port }

// Path returns the path component, "/" when the input had none.
func (u *URL) Path() string { return u.path }

// Query returns the query component and whether one was present. A URL whose
// input ended in a bare '?' has a present, empty query; a URL with no '?' has
// none.
func (u *URL) Query() (string, bool) {
	return u.query, u.hasQuery
}

// String returns the canonical reconstruction of the URL in the form
// "http://host:port/path?query". Parsing the result yields the same host,
// port, path, and query as the receiver.
func (u *URL) String() string {
	var b strings.Builder
	b.WriteString(u.scheme)
	b.WriteString(schemeSeparator)
	b.WriteString(u.host)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(u.port))
	b.WriteString(u.path)
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	return b.String()
}
