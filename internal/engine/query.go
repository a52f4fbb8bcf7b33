package engine

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/tartampluch/go-yourage/internal/config"
)

// QueryParams is the part of the state mirrored into the URL query string.
type QueryParams struct {
	Name     string
	Birthday Date
}

// EncodeQuery serializes p without a leading "?". Empty fields are omitted,
// so the zero value encodes to "".
func EncodeQuery(p QueryParams) string {
	values := url.Values{}
	if p.Name != "" {
		values.Set(config.QueryKeyName, p.Name)
	}
	if !p.Birthday.IsZero() {
		values.Set(config.QueryKeyBirthday, p.Birthday.String())
	}
	return values.Encode()
}

// DecodeQuery parses a query string, tolerating a leading "?".
// It never fails: a missing name decodes to "", a missing or malformed
// birthday decodes to the zero Date.
func DecodeQuery(query string) QueryParams {
	query = strings.TrimPrefix(query, config.QueryPrefix)

	// ParseQuery keeps every well-formed pair even when it reports an error.
	values, err := url.ParseQuery(query)
	if err != nil {
		slog.Debug(config.MsgBadQuery,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyQuery, query,
			config.LogKeyError, err,
		)
	}

	p := QueryParams{Name: values.Get(config.QueryKeyName)}
	if raw := values.Get(config.QueryKeyBirthday); raw != "" {
		if d, err := ParseDate(raw); err == nil {
			p.Birthday = d
		}
	}
	return p
}
