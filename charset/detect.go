package charset

import (
	"bytes"

	"github.com/saintfish/chardet"
)

// Detect guesses the charset of raw using a byte-frequency heuristic and
// returns it together with the detector's confidence (0..100). A BOM wins
// outright. When no candidate reaches floor, or the detector cannot decide
// at all, Detect falls back to UTF-8 with confidence 0 — detection itself
// never fails; a wrong guess surfaces later as a decode or syntax error,
// which is why the Ignore/Replace policies exist.
//
// Expect mis-detection on short or ambiguous buffers.
func Detect(raw []byte, floor int) (*Charset, int) {
	if cs := SniffBOM(raw); cs != nil {
		return cs, 100
	}
	best, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil || best == nil || best.Confidence < floor {
		return utf8Charset, 0
	}
	cs, lerr := Lookup(best.Charset)
	if lerr != nil {
		return utf8Charset, 0
	}
	return cs, best.Confidence
}

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// SniffBOM returns the charset implied by a leading byte-order mark, or
// nil when the buffer carries none.
func SniffBOM(raw []byte) *Charset {
	switch {
	case bytes.HasPrefix(raw, utf8BOM):
		return utf8SigCharset
	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		return registry["utf-16"] // the UseBOM variant consumes the marker
	default:
		return nil
	}
}
