// Package lenientjson wraps the strict goccy/go-json engine with a
// permissive load pipeline and an extensible dump pipeline.
//
// Loading accepts bytes, literal JSON text, or a file path, tolerates
// non-UTF-8 input via explicit charsets or best-effort detection, and
// offers recovery policies (ignore/replace/backslash-escape) for damaged
// byte sequences. Parsing itself stays strict: grammar errors surface as
// SyntaxError with line/column/offset.
//
// Dumping consults an ordered dispatch table for value kinds the engine
// cannot serialize — temporal values (time.Time and the civil.* kinds),
// numeric vectors (gonum mat.Vector), labeled series (gota) — before an
// optional caller-supplied fallback converter. Output can be returned,
// written to a file, or both.
//
// Components:
//   - charset: encoding registry, policy-driven decode, detection.
//   - dispatch: ordered type-dispatch rules and format directives.
//   - log/{zap,logrus,slog}: Logger adapters.
//
// Determinism: Go maps are unordered, so the engine emits map keys in
// sorted order; identical inputs always produce byte-identical output.
package lenientjson
