package lenientjson

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/unkn0wn-root/lenientjson/charset"
	"github.com/unkn0wn-root/lenientjson/internal/textpos"
)

// Path forces path semantics for a string input: the file must exist, or
// Loads fails with NotFoundError. Use it when the path-vs-literal
// ambiguity of plain strings is unacceptable.
type Path string

// Loads parses JSON from input, which may be:
//
//   - []byte or json.RawMessage: used as-is.
//   - string: if it names an existing regular file, the file's contents
//     are loaded; otherwise the string itself is the JSON text. The
//     ambiguity is resolved purely by filesystem existence — a known
//     quirk, kept for compatibility with inline-JSON callers. Use Path to
//     opt out.
//   - Path: the file must exist.
//
// Valid UTF-8 goes straight to the engine. Otherwise (or when an explicit
// encoding is given) the bytes run through the charset pipeline first:
// decode under the caller's policy, then parse. Detection is best-effort
// and silently falls back to UTF-8; the subsequent decode or parse
// reports any resulting failure.
func (a *API) Loads(input any, opts ...LoadOption) (any, error) {
	cfg := loadConfig{policy: PolicyStrict}
	for _, o := range opts {
		o(&cfg)
	}

	raw, err := a.resolve(input)
	if err != nil {
		return nil, err
	}

	if cfg.encoding != "" {
		cs, err := charset.Lookup(cfg.encoding)
		if err != nil {
			return nil, err
		}
		return a.decodeAndParse(cs, raw, cfg.policy)
	}

	if utf8.Valid(raw) && charset.SniffBOM(raw) == nil {
		v, perr := parse(raw)
		if perr == nil {
			return v, nil
		}
		// The bytes are valid UTF-8 but not valid JSON. A multi-byte
		// charset can still hide here (UTF-16 of ASCII text is valid
		// UTF-8 riddled with NULs), so consult detection once before
		// giving up. The original syntax error wins any tie.
		cs, conf := charset.Detect(raw, a.floor)
		if cs.Name == "utf-8" {
			return nil, perr
		}
		a.log.Debug("retrying parse after charset detection",
			Fields{"charset": cs.Name, "confidence": conf})
		if v, err := a.decodeAndParse(cs, raw, cfg.policy); err == nil {
			return v, nil
		}
		return nil, perr
	}

	cs, conf := charset.Detect(raw, a.floor)
	a.log.Debug("charset detected", Fields{"charset": cs.Name, "confidence": conf})
	return a.decodeAndParse(cs, raw, cfg.policy)
}

func (a *API) decodeAndParse(cs *charset.Charset, raw []byte, p ErrorPolicy) (any, error) {
	text, err := cs.Decode(raw, p)
	if err != nil {
		return nil, err
	}
	return parse([]byte(text))
}

// resolve normalizes the input to raw bytes. File reads are whole-file,
// open-read-close within the call.
func (a *API) resolve(input any) ([]byte, error) {
	switch in := input.(type) {
	case []byte:
		return in, nil
	case json.RawMessage:
		return []byte(in), nil
	case Path:
		if !isRegularFile(string(in)) {
			return nil, &NotFoundError{Path: string(in)}
		}
		return os.ReadFile(string(in))
	case string:
		if isRegularFile(in) {
			// Existence decided the interpretation; read failures
			// past this point (e.g. permissions) are real errors.
			return os.ReadFile(in)
		}
		return []byte(in), nil
	default:
		return nil, fmt.Errorf("lenientjson: cannot load from input of type %T", input)
	}
}

func isRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// parse hands UTF-8 text to the strict engine and translates its syntax
// errors into position-carrying SyntaxError values.
func parse(b []byte) (any, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			line, col := textpos.Locate(b, syn.Offset)
			return nil, &SyntaxError{
				Msg:    syn.Error(),
				Offset: syn.Offset,
				Line:   line,
				Col:    col,
				err:    err,
			}
		}
		return nil, err
	}
	return v, nil
}
