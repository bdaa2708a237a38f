package dictionary

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is used when no encoding is configured
const DefaultEncoding = "utf-8"

// ErrUnknownEncoding is returned for labels neither the IANA registry nor
// the HTML charset table knows.
var ErrUnknownEncoding = errors.New("unknown encoding")

// codecAliases maps common codec names that are not registered IANA
// aliases to their IANA name.
var codecAliases = map[string]string{
	"ascii":   "us-ascii",
	"utf8":    "utf-8",
	"latin-1": "iso-8859-1",
}

// Encoding is a resolved output character set
type Encoding struct {
	// Name is the canonical lower-case name, e.g. "iso-8859-1" for "latin1"
	Name string
	enc  encoding.Encoding
}

// LookupEncoding resolves a label such as "utf-8" or "iso-8859-1". Labels
// are resolved against the IANA registry so "iso-8859-1" really is
// ISO-8859-1; the HTML charset table is only consulted for labels IANA
// does not know.
func LookupEncoding(label string) (*Encoding, error) {
	if label == "" {
		label = DefaultEncoding
	}

	key := strings.ToLower(strings.TrimSpace(label))
	if alias, ok := codecAliases[key]; ok {
		key = alias
	}

	if enc, err := ianaindex.IANA.Encoding(key); err == nil && enc != nil {
		return &Encoding{Name: strings.ToLower(canonicalName(enc, key)), enc: enc}, nil
	}

	enc, name := charset.Lookup(key)
	if enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	return &Encoding{Name: name, enc: enc}, nil
}

// canonicalName prefers the MIME name ("ISO-8859-1") over the registry
// name ("ISO_8859-1:1987").
func canonicalName(enc encoding.Encoding, fallback string) string {
	if name, err := ianaindex.MIME.Name(enc); err == nil && name != "" {
		return name
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil && name != "" {
		return name
	}
	return fallback
}

// Encode converts s to the encoding. It fails if s contains characters the
// encoding cannot represent.
func (e *Encoding) Encode(s string) ([]byte, error) {
	out, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("cannot encode %q as %s: %w", s, e.Name, err)
	}
	return out, nil
}

func (e *Encoding) newEncoder() *encoding.Encoder {
	return e.enc.NewEncoder()
}
