package lenientjson

import (
	"github.com/unkn0wn-root/lenientjson/charset"
	"github.com/unkn0wn-root/lenientjson/dispatch"
)

// Flags tune the dump side. They follow the wrapped engine's option
// vocabulary; unrecognized bits are rejected rather than ignored.
type Flags uint

const (
	// OptAppendNewline appends '\n' to the output.
	OptAppendNewline Flags = 1 << iota
	// OptIndent2 pretty-prints with two-space indentation.
	OptIndent2
	// OptOmitMicroseconds drops sub-second precision from native
	// temporal rendering.
	OptOmitMicroseconds
	// OptPassthroughDatetime routes temporal values through the dispatch
	// table (directive patterns, or the fallback converter when one is
	// given) instead of the native ISO rendering.
	OptPassthroughDatetime
	// OptSerializeVector enables the numeric-vector and labeled-series
	// rules. Dumps sets it implicitly; the constant exists for callers
	// building dispatch tables directly.
	OptSerializeVector
	// OptSortKeys is accepted for compatibility. Go map keys are always
	// emitted in sorted order by the engine, so it is a no-op here.
	OptSortKeys
	// OptUTCZ converts instants to UTC before native rendering, so they
	// serialize with a Z suffix.
	OptUTCZ

	optAll = OptAppendNewline | OptIndent2 | OptOmitMicroseconds |
		OptPassthroughDatetime | OptSerializeVector | OptSortKeys | OptUTCZ
)

// ErrorPolicy governs how undecodable byte sequences are handled during
// load. The default is PolicyStrict.
type ErrorPolicy = charset.Policy

const (
	PolicyStrict          = charset.Strict
	PolicyIgnore          = charset.Ignore
	PolicyReplace         = charset.Replace
	PolicyBackslashEscape = charset.BackslashEscape
)

type loadConfig struct {
	encoding string
	policy   ErrorPolicy
}

// LoadOption configures a single Loads call.
type LoadOption func(*loadConfig)

// WithEncoding decodes the input with the named charset instead of running
// detection. Unknown names fail the call with UnknownEncodingError.
func WithEncoding(name string) LoadOption {
	return func(c *loadConfig) { c.encoding = name }
}

// WithErrorPolicy selects the recovery behavior for bytes that are invalid
// in the chosen or detected charset.
func WithErrorPolicy(p ErrorPolicy) LoadOption {
	return func(c *loadConfig) { c.policy = p }
}

type dumpConfig struct {
	flags       Flags
	fallback    dispatch.Func
	datetimeFmt string
	dateFmt     string
	timeFmt     string
	output      string
}

// DumpOption configures a single Dumps call.
type DumpOption func(*dumpConfig)

// WithFlags sets the option bitflags for this call.
func WithFlags(f Flags) DumpOption {
	return func(c *dumpConfig) { c.flags |= f }
}

// WithFallback supplies a converter for values the built-in rules cannot
// serialize. Its result is re-validated through the same dispatch table.
// For temporal values it takes precedence over the format directives.
func WithFallback(fn dispatch.Func) DumpOption {
	return func(c *dumpConfig) { c.fallback = fn }
}

// WithDatetimeFormat sets the strftime pattern for datetimes in
// pass-through mode. Giving any format without a fallback converter
// implies OptPassthroughDatetime.
func WithDatetimeFormat(p string) DumpOption {
	return func(c *dumpConfig) { c.datetimeFmt = p }
}

// WithDateFormat sets the strftime pattern for dates in pass-through mode.
func WithDateFormat(p string) DumpOption {
	return func(c *dumpConfig) { c.dateFmt = p }
}

// WithTimeFormat sets the strftime pattern for times of day in
// pass-through mode.
func WithTimeFormat(p string) DumpOption {
	return func(c *dumpConfig) { c.timeFmt = p }
}

// WithOutput additionally writes the payload to path, overwriting any
// existing file. The write happens only after serialization succeeds, and
// the return value is produced regardless.
func WithOutput(path string) DumpOption {
	return func(c *dumpConfig) { c.output = path }
}
