// Package urlutil parses a restricted subset of HTTP URLs into structured,
// immutable values.
//
// This package exists for consumers that fetch over plain HTTP and need the
// scheme, host, port, path, and query of a URL without the full weight (or the
// strictness) of RFC 3986 parsing. The only scheme it accepts is "http";
// everything else about the input degrades gracefully to defaults instead of
// failing, so a bare "http://example.com" parses to host "example.com",
// port 80, path "/", and no query.
//
// # Usage
//
// Use Parse to turn a raw string into a URL value:
//
//	import "github.com/gobrowse/core/urlutil"
//
//	u, err := urlutil.Parse("http://example.com:8080/path?a=123")
//	if err != nil {
//		return fmt.Errorf("invalid request URL: %w", err)
//	}
//	fmt.Printf("connecting to %s:%d\n", u.Host(), u.Port())
//
// Use errors.As to inspect the rejected scheme:
//
//	_, err := urlutil.Parse("https://example.com")
//	var schemeErr *urlutil.UnsupportedSchemeError
//	if errors.As(err, &schemeErr) {
//		fmt.Printf("got scheme %q, need http\n", schemeErr.Scheme)
//	}
//
// Use String to get the canonical reconstruction of a parsed URL:
//
//	u, _ := urlutil.Parse("http://example.com")
//	fmt.Println(u.String()) // "http://example.com:80/"
//
// # Parsing Rules
//
// Parse enforces exactly one rule and defaults everything else:
//   - The scheme (the token before "://") must be exactly "http"; any other
//     token, including the empty string when "://" is absent, is rejected
//     with UnsupportedSchemeError.
//   - A missing or malformed port (non-numeric, out of the 0-65535 range)
//     defaults to 80.
//   - A missing path defaults to "/".
//   - The query is reported as present only when a '?' appears in the input;
//     "http://host/p?" has a present-but-empty query, "http://host/p" has
//     none.
//
// # Limitations
//
// This is deliberately not a general URI parser. There is no percent-decoding,
// no userinfo component, no IPv6 host literals, no fragment handling, and no
// relative reference resolution. Callers that need RFC 3986 semantics should
// use net/url instead.
package urlutil
