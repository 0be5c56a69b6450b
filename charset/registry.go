package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// registry is populated once below and read-only afterwards.
var registry = buildRegistry()

var (
	utf8Charset    = &Charset{Name: "utf-8", kind: kindUTF8}
	utf8SigCharset = &Charset{Name: "utf-8-sig", kind: kindUTF8Sig}
	asciiCharset   = &Charset{Name: "ascii", kind: kindASCII}
)

func buildRegistry() map[string]*Charset {
	m := make(map[string]*Charset)
	add := func(cs *Charset, aliases ...string) {
		m[cs.Name] = cs
		for _, a := range aliases {
			m[a] = cs
		}
	}
	x := func(name string, enc encoding.Encoding) *Charset {
		return &Charset{Name: name, kind: kindXText, enc: enc}
	}

	add(utf8Charset, "utf8")
	add(utf8SigCharset, "utf8-sig")
	add(asciiCharset, "us-ascii")
	add(x("gbk", simplifiedchinese.GBK), "cp936", "gb2312") // gb2312 data is a GBK subset
	add(x("gb18030", simplifiedchinese.GB18030), "gb-18030")
	add(x("big5", traditionalchinese.Big5), "big5-hkscs")
	add(x("shift-jis", japanese.ShiftJIS), "sjis", "shift_jis", "cp932")
	add(x("euc-jp", japanese.EUCJP))
	add(x("iso-2022-jp", japanese.ISO2022JP))
	add(x("euc-kr", korean.EUCKR))
	add(x("utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)), "utf16")
	add(x("utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)))
	add(x("utf-16be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)))
	add(x("iso-8859-1", charmap.ISO8859_1), "latin-1", "latin1")
	add(x("windows-1252", charmap.Windows1252), "cp1252")
	add(x("koi8-r", charmap.KOI8R))
	return m
}

// normalize folds the usual spelling variants: case, underscores and
// spaces. "Shift_JIS", "shift jis" and "SHIFT-JIS" all resolve the same.
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	return strings.ReplaceAll(name, " ", "-")
}

// Lookup resolves an encoding name to a Charset. Names not in the built-in
// table fall through to the IANA index, so any charset x/text implements is
// reachable by its registered name. Unknown names return an
// UnknownEncodingError.
func Lookup(name string) (*Charset, error) {
	n := normalize(name)
	if cs, ok := registry[n]; ok {
		return cs, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, &UnknownEncodingError{Name: name}
	}
	return &Charset{Name: n, kind: kindXText, enc: enc}, nil
}

// UnknownEncodingError reports an encoding name that is neither registered
// nor resolvable through the IANA index.
type UnknownEncodingError struct {
	Name string
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("charset: unknown encoding %q", e.Name)
}

// DecodeError reports input that cannot be decoded under the Strict policy.
type DecodeError struct {
	Encoding string
	Offset   int  // byte offset into the input; approximate for multi-byte charsets
	Byte     byte // the offending byte, when identifiable

	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("charset: cannot decode byte 0x%02x at offset %d as %s", e.Byte, e.Offset, e.Encoding)
}

func (e *DecodeError) Unwrap() error { return e.cause }
