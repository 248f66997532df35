package gap

import (
	"fmt"
	"linkgap/pkg/serrors"
	"net/url"
	"strings"
)

// Search Console property identifier prefixes. A domain property covers every
// protocol and subdomain of a single domain; a property set aggregates
// multiple unrelated properties and therefore has no single domain.
const (
	domainPropertyPrefix = "sc-domain:"
	propertySetPrefix    = "sc-set:"
)

// NormalizeDomain canonicalizes a site identifier to a bare hostname.
//
// Accepted inputs:
//   - a URL-prefix property or plain URL ("https://www.example.com/shop")
//   - a bare hostname ("Example.COM", "example.com:443")
//   - a domain property identifier ("sc-domain:example.com")
//
// The result is lowercase, without scheme, port, path or a leading "www.".
//
// Property-set identifiers are rejected with ErrUnsupportedIdentifier: they
// aggregate several sites and no single domain can be derived from one, so
// they must fail before any network call rather than degrade into a
// best-effort parse.
func NormalizeDomain(identifier string) (string, error) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return "", serrors.With(serrors.ErrBadRequest, "empty site identifier")
	}

	lower := strings.ToLower(id)
	if strings.HasPrefix(lower, propertySetPrefix) {
		return "", serrors.With(ErrUnsupportedIdentifier,
			"property set %q aggregates multiple sites, no single domain can be derived", identifier)
	}

	var host string
	switch {
	case strings.HasPrefix(lower, domainPropertyPrefix):
		host = lower[len(domainPropertyPrefix):]
	case strings.Contains(lower, "://"):
		u, err := url.Parse(lower)
		if err != nil {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "could not parse site URL")
		}
		host = u.Hostname()
	default:
		// Bare hostname, possibly with a port or a path tacked on.
		u, err := url.Parse("//" + lower)
		if err != nil {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "could not parse site identifier")
		}
		host = u.Hostname()
	}

	host = strings.TrimSuffix(host, ".")
	host = strings.TrimPrefix(host, "www.")

	if host == "" || !strings.Contains(host, ".") || strings.ContainsAny(host, " \t") {
		return "", serrors.With(serrors.ErrBadRequest, "invalid site identifier %q", identifier)
	}

	return host, nil
}

// normalizeManual canonicalizes a caller-supplied competitor list, dropping
// duplicates while preserving order. Any invalid entry fails the whole list;
// a manual analysis against a half-validated competitor set would be
// misleading.
func normalizeManual(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		d, err := NormalizeDomain(r)
		if err != nil {
			return nil, fmt.Errorf("invalid competitor %q: %w", r, err)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	return out, nil
}
