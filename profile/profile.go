package profile

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Profiler describes one profiling session. The zero Profiler does nothing.
type Profiler struct {
	// Mode is one of [Modes]. An empty or unsupported mode disables
	// profiling.
	Mode string
	// Path is the output directory. Empty selects a temporary directory.
	Path string
	// Quiet suppresses the profiler's own log lines.
	Quiet bool
}

// Enabled reports whether p would start a profile.
func (p Profiler) Enabled() bool {
	_, ok := lookup(p.Mode)

	return ok
}

// Start begins profiling. Start and the returned Stop are always safe to
// call, including in builds without profiling support.
func (p Profiler) Start() Stopper {
	if !p.Enabled() {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
