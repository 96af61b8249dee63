// Package hypernet defines options, error types and gap kinds for hypernet
// traversal over a db.Database.
package hypernet

import (
	"context"
)

// Error types reported by hypernet operations, see errors.Type.
const (
	// ErrTypeBadOccurrence is reported for an invalid occurrence, or one that
	// does not name a net.
	ErrTypeBadOccurrence = "hypernet_bad_occurrence"

	// ErrTypeMissingPlug is reported when an external net seen through an
	// instance has no plug on it.
	ErrTypeMissingPlug = "hypernet_missing_plug"

	// ErrTypeInterrupted is reported when the walk context is done.
	ErrTypeInterrupted = "hypernet_interrupted"
)

// Gap kinds, logged and counted when the walk skips a missing link.
const (
	GapMissingPlug      = "missing_plug"
	GapUnconnectedPlug  = "unconnected_plug"
	GapUndeclaredGlobal = "undeclared_global"
)

// InterruptionPeriod is the number of extracted components between two
// context checks.
const InterruptionPeriod = 200

// Option configures one view.
type Option func(*Options)

// Options holds the switches of a view.
type Options struct {
	// Extraction follows geometric overlaps in addition to plugs.
	Extraction bool

	// Interruption lets Ctx stop the walk during extraction.
	Interruption bool

	// Ctx is checked every InterruptionPeriod extracted components when
	// Interruption is set.
	Ctx context.Context

	// TerminalCells makes ComponentOccurrences yield the components of
	// terminal netlist cells too.
	TerminalCells bool

	// Globals also joins global nets to the global nets of the same name in
	// the parent cell and in instantiated masters.
	Globals bool
}

// DefaultOptions returns a plug-only, uninterruptible walk that ignores
// global net names.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithExtraction enables geometric extraction.
func WithExtraction() Option {
	return func(o *Options) { o.Extraction = true }
}

// WithInterruption allows the walk context to stop extraction.
func WithInterruption() Option {
	return func(o *Options) { o.Interruption = true }
}

// WithContext sets the context checked when interruption is allowed.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTerminalCells makes ComponentOccurrences descend into terminal netlist cells.
func WithTerminalCells() Option {
	return func(o *Options) { o.TerminalCells = true }
}

// WithGlobals follows global nets by name across the hierarchy.
func WithGlobals() Option {
	return func(o *Options) { o.Globals = true }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
