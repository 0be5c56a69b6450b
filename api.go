package lenientjson

import (
	"fmt"

	"github.com/unkn0wn-root/lenientjson/dispatch"
)

const defaultConfidenceFloor = 30

// Options tune process-level behavior. All fields are optional; the zero
// value gives a silent instance with standard thresholds.
type Options struct {
	// Logger receives Debug-level events. nil disables logging.
	Logger Logger
	// ConfidenceFloor is the minimum chardet confidence (1..100) a
	// detection candidate needs before it is trusted over the UTF-8
	// fallback. 0 means the default of 30.
	ConfidenceFloor int
	// MaxFallbackDepth bounds fallback-converter recursion during dumps.
	// 0 means the engine default.
	MaxFallbackDepth int
}

// API is a configured loads/dumps instance. Instances share no mutable
// state; calls on the same instance may run concurrently.
type API struct {
	log      Logger
	floor    int
	maxDepth int
}

func New(opts Options) (*API, error) {
	if opts.ConfidenceFloor < 0 || opts.ConfidenceFloor > 100 {
		return nil, fmt.Errorf("lenientjson: confidence floor must be in [0,100], got %d", opts.ConfidenceFloor)
	}
	if opts.MaxFallbackDepth < 0 {
		return nil, fmt.Errorf("lenientjson: max fallback depth must be >= 0, got %d", opts.MaxFallbackDepth)
	}
	return &API{
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		floor:    coalesce(opts.ConfidenceFloor, defaultConfidenceFloor),
		maxDepth: coalesce(opts.MaxFallbackDepth, dispatch.DefaultMaxDepth),
	}, nil
}

// std backs the package-level functions.
var std = &API{log: NopLogger{}, floor: defaultConfidenceFloor, maxDepth: dispatch.DefaultMaxDepth}

// Loads parses JSON from bytes, literal text, or a file path using the
// default instance. See API.Loads.
func Loads(input any, opts ...LoadOption) (any, error) { return std.Loads(input, opts...) }

// Dumps serializes v to JSON bytes using the default instance. See
// API.Dumps.
func Dumps(v any, opts ...DumpOption) ([]byte, error) { return std.Dumps(v, opts...) }

// DumpsString is Dumps returning the payload as UTF-8 text.
func DumpsString(v any, opts ...DumpOption) (string, error) { return std.DumpsString(v, opts...) }

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
