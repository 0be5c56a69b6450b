// Package charset resolves encoding names to byte-to-text decoders and
// performs best-effort charset detection for buffers of unknown origin.
//
// The registry of named charsets is built once at package init and never
// mutated afterwards, so lookups are safe from any goroutine without
// locking. Decoding is policy-driven: the caller chooses what happens to
// byte sequences that are invalid in the selected charset.
package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// Policy selects how undecodable byte sequences are handled.
type Policy int

const (
	// Strict fails the decode with a DecodeError on the first invalid
	// byte sequence.
	Strict Policy = iota
	// Ignore drops invalid byte sequences from the output.
	Ignore
	// Replace substitutes U+FFFD for invalid byte sequences.
	Replace
	// BackslashEscape substitutes a literal \xNN escape for each
	// offending input byte.
	BackslashEscape
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Ignore:
		return "ignore"
	case Replace:
		return "replace"
	case BackslashEscape:
		return "backslashescape"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

type kind int

const (
	kindUTF8 kind = iota
	kindUTF8Sig
	kindASCII
	kindXText
)

// Charset is a named byte-to-text decoder. Values handed out by Lookup and
// Detect are shared and must not be modified.
type Charset struct {
	// Name is the normalized registry name, e.g. "gbk" or "utf-16le".
	Name string

	kind kind
	enc  encoding.Encoding // nil for the UTF-8 family
}

// Decode converts raw bytes to text under the given policy. Under Strict
// the returned DecodeError carries the offset of the offending byte; for
// non-UTF-8 charsets the offset is reconstructed by re-encoding the clean
// prefix and is therefore approximate for multi-byte damage.
func (c *Charset) Decode(raw []byte, p Policy) (string, error) {
	switch c.kind {
	case kindUTF8:
		return decodeUTF8(raw, p, utf8.MaxRune, c.Name)
	case kindUTF8Sig:
		return decodeUTF8(bytes.TrimPrefix(raw, utf8BOM), p, utf8.MaxRune, c.Name)
	case kindASCII:
		return decodeUTF8(raw, p, 0x7F, c.Name)
	default:
		return c.decodeXText(raw, p)
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeUTF8 validates raw as UTF-8, capping runes at maxRune (0x7F for
// ascii). Invalid sequences are handled byte-by-byte, matching the usual
// codec convention of one substitution per damaged byte.
func decodeUTF8(raw []byte, p Policy, maxRune rune, name string) (string, error) {
	if maxRune == utf8.MaxRune && utf8.Valid(raw) {
		return string(raw), nil
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if (r != utf8.RuneError || size > 1) && r <= maxRune {
			b.WriteRune(r)
			i += size
			continue
		}
		switch p {
		case Strict:
			return "", &DecodeError{Encoding: name, Offset: i, Byte: raw[i]}
		case Ignore:
		case Replace:
			b.WriteRune(utf8.RuneError)
		case BackslashEscape:
			fmt.Fprintf(&b, `\x%02x`, raw[i])
		}
		i++
	}
	return b.String(), nil
}

// decodeXText decodes through the x/text decoder, which substitutes U+FFFD
// for invalid input, then applies the policy to the substitutions. A
// replacement rune that the charset can itself encode at that position
// (possible under gb18030, a full Unicode encoding) is genuine data, not
// damage.
func (c *Charset) decodeXText(raw []byte, p Policy) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &DecodeError{Encoding: c.Name, Offset: 0, cause: err}
	}
	s := string(out)
	if p == Replace || !strings.ContainsRune(s, utf8.RuneError) {
		return s, nil
	}

	genuine, canEncodeFFFD := c.encodedReplacement()
	parts := strings.Split(s, string(utf8.RuneError))
	var b strings.Builder
	b.Grow(len(s))
	off := 0
	for i, part := range parts {
		b.WriteString(part)
		if enc, err := c.enc.NewEncoder().String(part); err == nil {
			off += len(enc)
		}
		if i == len(parts)-1 {
			break
		}
		if canEncodeFFFD && bytes.HasPrefix(raw[off:], genuine) {
			b.WriteRune(utf8.RuneError)
			off += len(genuine)
			continue
		}
		switch p {
		case Strict:
			return "", &DecodeError{Encoding: c.Name, Offset: off, Byte: byteAt(raw, off)}
		case Ignore:
			off++
		case BackslashEscape:
			fmt.Fprintf(&b, `\x%02x`, byteAt(raw, off))
			off++
		}
	}
	return b.String(), nil
}

func (c *Charset) encodedReplacement() ([]byte, bool) {
	enc, err := c.enc.NewEncoder().String(string(utf8.RuneError))
	if err != nil || len(enc) == 0 {
		return nil, false
	}
	return []byte(enc), true
}

func byteAt(b []byte, i int) byte {
	if i >= 0 && i < len(b) {
		return b[i]
	}
	return 0
}
