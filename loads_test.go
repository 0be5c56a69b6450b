package lenientjson

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

var wantAB = map[string]any{"a": float64(1), "b": float64(2)}

func mustLoads(t *testing.T, input any, opts ...LoadOption) any {
	t.Helper()
	v, err := Loads(input, opts...)
	if err != nil {
		t.Fatalf("Loads: %v", err)
	}
	return v
}

func TestLoadsBytes(t *testing.T) {
	got := mustLoads(t, []byte(`{"a": 1, "b": 2}`))
	if !reflect.DeepEqual(got, wantAB) {
		t.Fatalf("got %v", got)
	}
}

func TestLoadsPathVsLiteral(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(`{"a": 1, "b": 2}`), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	// Existing file: the string is a path.
	if got := mustLoads(t, path); !reflect.DeepEqual(got, wantAB) {
		t.Fatalf("path form: got %v", got)
	}
	// Same shape, no such file: the string is literal JSON.
	if got := mustLoads(t, `{"a": 1, "b": 2}`); !reflect.DeepEqual(got, wantAB) {
		t.Fatalf("literal form: got %v", got)
	}
}

func TestLoadsExplicitPathMustExist(t *testing.T) {
	_, err := Loads(Path(filepath.Join(t.TempDir(), "missing.json")))
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestLoadsUnsupportedInput(t *testing.T) {
	if _, err := Loads(42); err == nil {
		t.Fatalf("expected error for int input")
	}
}

func TestLoadsGBK(t *testing.T) {
	const text = `{"name": "小明"}`
	raw, err := simplifiedchinese.GBK.NewEncoder().String(text)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	got := mustLoads(t, []byte(raw), WithEncoding("gbk"))
	if got.(map[string]any)["name"] != "小明" {
		t.Fatalf("explicit encoding: got %v", got)
	}

	// The alias spelling resolves to the same charset.
	got = mustLoads(t, []byte(raw), WithEncoding("GB2312"))
	if got.(map[string]any)["name"] != "小明" {
		t.Fatalf("alias encoding: got %v", got)
	}
}

func TestLoadsDetection(t *testing.T) {
	// Enough multi-byte text for the detector to have a real signal.
	const text = `{"姓名": "小明", "城市": "北京", "备注": "编码检测需要足够的样本字节"}`
	raw, err := simplifiedchinese.GBK.NewEncoder().String(text)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	// No encoding given: detection picks something that parses.
	got := mustLoads(t, []byte(raw))
	if _, ok := got.(map[string]any); !ok {
		t.Fatalf("detection path returned %T", got)
	}

	// Replace policy never raises a decode error, whatever is detected.
	if _, err := Loads([]byte(raw), WithErrorPolicy(PolicyReplace)); err != nil {
		t.Fatalf("replace policy raised: %v", err)
	}
}

func TestLoadsUTF16BOM(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewEncoder()
	raw, err := enc.String(`{"a": 1, "b": 2}`)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if got := mustLoads(t, []byte(raw)); !reflect.DeepEqual(got, wantAB) {
		t.Fatalf("got %v", got)
	}
}

func TestLoadsUTF8SigBOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"a": 1, "b": 2}`)...)
	if got := mustLoads(t, raw); !reflect.DeepEqual(got, wantAB) {
		t.Fatalf("got %v", got)
	}
}

func TestLoadsUnknownEncoding(t *testing.T) {
	_, err := Loads([]byte(`{}`), WithEncoding("not-a-codec"))
	var ue *UnknownEncodingError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnknownEncodingError, got %v", err)
	}
}

func TestLoadsStrictDecodeError(t *testing.T) {
	raw := []byte(`{"a": "` + string(byte(0xFF)) + `"}`)
	_, err := Loads(raw, WithEncoding("utf-8"))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Offset != 7 {
		t.Fatalf("offset = %d, want 7", de.Offset)
	}

	// Non-strict policies turn the same input into a parseable document.
	if _, err := Loads(raw, WithEncoding("utf-8"), WithErrorPolicy(PolicyIgnore)); err != nil {
		t.Fatalf("ignore policy raised: %v", err)
	}
}

func TestLoadsSyntaxError(t *testing.T) {
	_, err := Loads([]byte("{\n  \"a\": oops\n}"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if se.Line != 2 {
		t.Fatalf("line = %d, want 2", se.Line)
	}
	if se.Offset <= 0 {
		t.Fatalf("offset not populated: %d", se.Offset)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Options{ConfidenceFloor: 150}); err == nil {
		t.Fatalf("expected error for out-of-range floor")
	}
	a, err := New(Options{})
	if err != nil {
		t.Fatalf("zero options must be valid: %v", err)
	}
	if got := mustLoadsAPI(t, a, []byte(`{"a": 1, "b": 2}`)); !reflect.DeepEqual(got, wantAB) {
		t.Fatalf("instance Loads: got %v", got)
	}
}

func mustLoadsAPI(t *testing.T, a *API, input any) any {
	t.Helper()
	v, err := a.Loads(input)
	if err != nil {
		t.Fatalf("Loads: %v", err)
	}
	return v
}
