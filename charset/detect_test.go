package charset

import (
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

func TestDetectBOM(t *testing.T) {
	cases := []struct {
		raw  []byte
		want string
	}{
		{[]byte{0xEF, 0xBB, 0xBF, '{', '}'}, "utf-8-sig"},
		{[]byte{0xFF, 0xFE, '{', 0x00, '}', 0x00}, "utf-16"},
		{[]byte{0xFE, 0xFF, 0x00, '{', 0x00, '}'}, "utf-16"},
	}
	for _, tc := range cases {
		cs, conf := Detect(tc.raw, 30)
		if cs.Name != tc.want {
			t.Fatalf("Detect(% x) = %q, want %q", tc.raw, cs.Name, tc.want)
		}
		if conf != 100 {
			t.Fatalf("BOM detection should be certain, got %d", conf)
		}
	}
}

func TestDetectFallsBackToUTF8(t *testing.T) {
	// Empty and near-empty buffers give the detector nothing to work
	// with; the contract is a silent UTF-8 fallback, never an error.
	for _, raw := range [][]byte{nil, {}, {'{'}} {
		cs, conf := Detect(raw, 30)
		if cs.Name != "utf-8" {
			t.Fatalf("Detect(% x) = %q, want utf-8 fallback", raw, cs.Name)
		}
		if conf != 0 {
			t.Fatalf("fallback should report zero confidence, got %d", conf)
		}
	}
}

func TestDetectImpossibleFloor(t *testing.T) {
	cs, _ := Detect([]byte(`{"key": "value", "other": [1, 2, 3]}`), 101)
	if cs.Name != "utf-8" {
		t.Fatalf("floor above any possible confidence must fall back, got %q", cs.Name)
	}
}

func TestDetectedCharsetDecodesDetectably(t *testing.T) {
	// Detection is approximate by contract, so don't pin the exact
	// charset; require that whatever is detected decodes the buffer
	// without error under Replace.
	text := `{"姓名": "小明", "城市": "北京", "备注": "编码检测需要足够的样本字节"}`
	gbk, err := simplifiedchinese.GBK.NewEncoder().String(text)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	u16, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String(text)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	for _, raw := range []string{gbk, u16} {
		cs, _ := Detect([]byte(raw), 30)
		if _, err := cs.Decode([]byte(raw), Replace); err != nil {
			t.Fatalf("detected %q but decode failed: %v", cs.Name, err)
		}
	}
}
