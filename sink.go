package lenientjson

import "os"

// emit writes the finished payload to path, overwriting any existing file.
// Binary mode throughout: no newline translation on any platform. Callers
// invoke it only after serialization succeeded, so a write failure never
// masks a serialization error.
func emit(payload []byte, path string) error {
	return os.WriteFile(path, payload, 0o644)
}
