package nj

// Strategy selects which of the three interchangeable NJ pipelines a Run
// call uses.
type Strategy int

const (
	// StrategyCanonical runs the dense O(N^3) textbook algorithm throughout.
	StrategyCanonical Strategy = iota
	// StrategyPruned runs the RapidNJ-style pruned search throughout.
	StrategyPruned
	// StrategyHybrid starts pruned and switches to canonical once n_leaves
	// reaches CanonicalIters.
	StrategyHybrid
)

// String renders a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyCanonical:
		return "canonical"
	case StrategyPruned:
		return "pruned"
	case StrategyHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// Options configures a driver Run call, mirroring spec.md section 6's
// "Driver configuration (abstract)".
type Options struct {
	// Strategy selects the pipeline. Zero value is StrategyCanonical.
	Strategy Strategy
	// Threads is the size of the parallel pool available to the pruned
	// search; values > 1 enable prunedq.Q.FindNeighborsParallel. Must be >= 1.
	Threads int
	// ChunkSize is the worker batch size for the pruned search. Must be >= 1.
	ChunkSize int
	// CanonicalIters is, for StrategyHybrid only, the n_leaves count at
	// which the driver switches from pruned to canonical. Must be in (0, N).
	CanonicalIters int
}

// DefaultOptions returns an Options value for a single-threaded canonical
// run, the safest default for any N >= 3.
func DefaultOptions() Options {
	return Options{Strategy: StrategyCanonical, Threads: 1, ChunkSize: 1}
}

// validate checks o against the current matrix order n, per spec.md
// section 7: ChunkSize == 0, or (for StrategyHybrid) CanonicalIters
// outside (0, n), is a ConfigInvalid error.
func (o Options) validate(n int) error {
	if o.ChunkSize <= 0 {
		return newError(ConfigInvalid, "chunk_size must be >= 1, got %d", o.ChunkSize)
	}
	if o.Threads <= 0 {
		return newError(ConfigInvalid, "threads must be >= 1, got %d", o.Threads)
	}
	if o.Strategy == StrategyHybrid && (o.CanonicalIters <= 0 || o.CanonicalIters >= n) {
		return newError(ConfigInvalid, "canonical_iters must be in (0, %d), got %d", n, o.CanonicalIters)
	}

	return nil
}
