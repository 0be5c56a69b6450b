package lenientjson

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/unkn0wn-root/lenientjson/dispatch"
)

// Dumps serializes v to JSON bytes. Values outside the engine's native set
// go through the per-call dispatch table: temporal values (when
// OptPassthroughDatetime is set or implied), numeric vectors, labeled
// series, then the fallback converter. Vector serialization is always on,
// matching the engine option the wrapped codec would otherwise need.
//
// Supplying any format directive without a fallback converter implies
// OptPassthroughDatetime. When a fallback converter is present it takes
// precedence over the directives for temporal values.
//
// With WithOutput, the payload is additionally written to the given path
// after serialization succeeds; a serialization failure is reported before
// any write is attempted.
func (a *API) Dumps(v any, opts ...DumpOption) ([]byte, error) {
	var cfg dumpConfig
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.flags&^optAll != 0 {
		return nil, fmt.Errorf("lenientjson: unrecognized option bits 0x%x", uint(cfg.flags&^optAll))
	}

	flags := cfg.flags | OptSerializeVector
	anyFmt := cfg.datetimeFmt != "" || cfg.dateFmt != "" || cfg.timeFmt != ""
	if cfg.fallback == nil && anyFmt {
		flags |= OptPassthroughDatetime
	}

	table := dispatch.New(dispatch.Directives{
		Datetime:            cfg.datetimeFmt,
		Date:                cfg.dateFmt,
		Time:                cfg.timeFmt,
		PassthroughTemporal: flags&OptPassthroughDatetime != 0,
		SerializeVectors:    flags&OptSerializeVector != 0,
		UTCZ:                flags&OptUTCZ != 0,
		OmitMicroseconds:    flags&OptOmitMicroseconds != 0,
	}, cfg.fallback, a.maxDepth)

	norm, err := table.Normalize(v)
	if err != nil {
		return nil, err
	}

	var raw []byte
	if flags&OptIndent2 != 0 {
		raw, err = json.MarshalIndent(norm, "", "  ")
	} else {
		raw, err = json.Marshal(norm)
	}
	if err != nil {
		return nil, err
	}
	if flags&OptAppendNewline != 0 {
		raw = append(raw, '\n')
	}

	if cfg.output != "" {
		if err := emit(raw, cfg.output); err != nil {
			return nil, err
		}
		a.log.Debug("payload written", Fields{"path": cfg.output, "bytes": len(raw)})
	}
	return raw, nil
}

// DumpsString is Dumps returning the payload as UTF-8 text. The file
// side-effect of WithOutput is unaffected by the return type.
func (a *API) DumpsString(v any, opts ...DumpOption) (string, error) {
	raw, err := a.Dumps(v, opts...)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
