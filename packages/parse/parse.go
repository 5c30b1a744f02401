package parse

import (
	"errors"
	"fmt"
	neturl "net/url"
	"strings"
)

var (
	// ErrInvalidURL is wrapped by every URL validation failure.
	ErrInvalidURL = errors.New("invalid url")

	// ErrInvalidPair is wrapped by every key=value validation failure.
	ErrInvalidPair = errors.New("invalid key=value pair")
)

// KVPair is one key=value body field supplied on the command line.
type KVPair struct {
	Key   string
	Value string
}

// Pairs is an ordered list of body fields.
type Pairs []KVPair

// URL checks that raw is an absolute http or https URL with a host and
// returns it unmodified. No normalization is performed.
func URL(raw string) (string, error) {
	u, err := neturl.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q (only http and https)", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}
	return raw, nil
}

// KV splits token on the first "=" into a KVPair. The remainder stays
// verbatim in the value, so "a=b=c" parses to {a, b=c}. The key must be
// non-empty; the value may be empty.
func KV(token string) (KVPair, error) {
	key, value, found := strings.Cut(token, "=")
	if !found {
		return KVPair{}, fmt.Errorf("%w: %q has no \"=\"", ErrInvalidPair, token)
	}
	if key == "" {
		return KVPair{}, fmt.Errorf("%w: %q has an empty key", ErrInvalidPair, token)
	}
	return KVPair{Key: key, Value: value}, nil
}

// KVs validates a token list in order.
func KVs(tokens []string) (Pairs, error) {
	pairs := make(Pairs, 0, len(tokens))
	for _, token := range tokens {
		pair, err := KV(token)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// Map collapses the ordered list into a key-unique mapping; a later
// duplicate key overwrites an earlier one.
func (p Pairs) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, pair := range p {
		m[pair.Key] = pair.Value
	}
	return m
}
