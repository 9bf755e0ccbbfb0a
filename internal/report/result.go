package report

import (
	"time"

	"github.com/intrigus/robovm/internal/reach"
)

// ShakeResult is the domain result a `robovm shake` run renders, built
// from an internal/reach.Engine's query surface plus run metadata.
type ShakeResult struct {
	Mode reach.TreeShakerMode

	TotalClasses     int
	AllClasses       []string
	ReachableClasses []string

	TotalMethods     int
	ReachableMethods []reach.MethodTriple

	Duration time.Duration
	Errors   []string
}

// NewShakeResult summarizes an engine's query results under its
// configured mode. totalMethods is supplied by the caller because the
// engine does not track a global method count independent of reachability.
func NewShakeResult(e *reach.Engine, totalMethods int, duration time.Duration) *ShakeResult {
	classSet := e.FindReachableClasses()
	classes := make([]string, 0, len(classSet))
	for c := range classSet {
		classes = append(classes, c)
	}

	methodSet := e.FindReachableMethods()
	methods := make([]reach.MethodTriple, 0, len(methodSet))
	for m := range methodSet {
		methods = append(methods, m)
	}

	all := e.GetAllClasses()
	return &ShakeResult{
		Mode:             e.Mode(),
		TotalClasses:     len(all),
		AllClasses:       all,
		ReachableClasses: classes,
		TotalMethods:     totalMethods,
		ReachableMethods: methods,
		Duration:         duration,
	}
}

// DroppedClasses is TotalClasses minus the reachable count.
func (r *ShakeResult) DroppedClasses() int {
	return r.TotalClasses - len(r.ReachableClasses)
}

// DroppedMethods is TotalMethods minus the reachable count.
func (r *ShakeResult) DroppedMethods() int {
	return r.TotalMethods - len(r.ReachableMethods)
}

// DroppedClassNames returns the classes in AllClasses that the engine
// did not mark reachable, for formatters whose options ask to show them.
func (r *ShakeResult) DroppedClassNames() []string {
	reachable := make(map[string]struct{}, len(r.ReachableClasses))
	for _, c := range r.ReachableClasses {
		reachable[c] = struct{}{}
	}
	var dropped []string
	for _, c := range r.AllClasses {
		if _, ok := reachable[c]; !ok {
			dropped = append(dropped, c)
		}
	}
	return dropped
}

// StripResult is the domain result a `robovm strip` run renders.
type StripResult struct {
	ArchivePath string

	TotalEntries    int
	IncludedEntries []string
	ExcludedEntries []string

	Duration time.Duration
	Errors   []string
}
