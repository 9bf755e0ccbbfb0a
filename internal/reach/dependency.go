package reach

// Clazz is one compiled class descriptor ingested by Engine.Add. Its
// production — parsing a real class file into this shape — is outside
// this package; see internal/ingest for the JSON driver this repo uses
// to exercise the engine end-to-end.
type Clazz struct {
	InternalName string    `json:"internal_name"`
	Info         ClazzInfo `json:"info"`
}

// ClazzInfo carries the class-level facts the engine needs to decide
// strong-pin eligibility and to wire class-level dependency edges.
type ClazzInfo struct {
	IsEnum   bool `json:"is_enum"`
	IsStruct bool `json:"is_struct"`
	// IsRoot marks this descriptor as an entry point in its own right,
	// independent of the CLI/config `--roots` list — set by descriptors
	// produced for classes the original AOT driver always keeps (e.g.
	// annotation-marked entry points) so callers don't have to
	// enumerate them externally too.
	IsRoot bool `json:"is_root"`

	Dependencies []Dependency `json:"dependencies"`
	Methods      []MethodInfo `json:"methods"`
}

// MethodInfo describes one declared method of a class.
type MethodInfo struct {
	Name              string       `json:"name"`
	Desc              string       `json:"desc"`
	IsStatic          bool         `json:"is_static"`
	IsCallback        bool         `json:"is_callback"`
	IsWeaklyLinked    bool         `json:"is_weakly_linked"`
	IsStronglyLinked  bool         `json:"is_strongly_linked"`
	Dependencies      []Dependency `json:"dependencies"`
}

// DependencyKind discriminates the three Dependency shapes.
type DependencyKind int

const (
	// DependencyPlain is a class-to-class dependency.
	DependencyPlain DependencyKind = iota
	// DependencyInvokeMethod is a method invocation dependency.
	DependencyInvokeMethod
	// DependencySuperMethod is a dependency on a (possibly overridden)
	// super method; method-level occurrences are reversed at insertion
	// time (spec.md §4.1.1 edge-type table).
	DependencySuperMethod
)

// Dependency is a tagged-union record: Kind selects which of the
// method-specific fields apply. ClassName is common to all three
// cases; MethodName/MethodDesc only apply to InvokeMethod/SuperMethod.
type Dependency struct {
	Kind       DependencyKind `json:"kind"`
	ClassName  string         `json:"class_name"`
	IsWeak     bool           `json:"is_weak"`
	MethodName string         `json:"method_name,omitempty"`
	MethodDesc string         `json:"method_desc,omitempty"`
}

// TreeShakerMode selects the weak-edge admission rule a traversal uses.
// It is plain data, not a subtype: the admission rule lives in
// traversal.go as a function parameterized on the mode (spec.md §9
// design note "Policy as data, not subtype").
type TreeShakerMode int

const (
	// ModeNone follows every weak edge: no shaking.
	ModeNone TreeShakerMode = iota
	// ModeConservative drops weakly-linked methods reached only weakly.
	ModeConservative
	// ModeAggressive keeps only strongly-linked methods and
	// non-weakly-linked constructors through weak edges.
	ModeAggressive
)

// String implements fmt.Stringer for log/debug output.
func (m TreeShakerMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeConservative:
		return "conservative"
	case ModeAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// ParseMode parses the CLI/config string form of a mode. Unknown
// values are the caller's error to report; this package has no
// recovery policy beyond returning ok=false, per spec.md §7's narrow
// error taxonomy.
func ParseMode(s string) (mode TreeShakerMode, ok bool) {
	switch s {
	case "none":
		return ModeNone, true
	case "conservative":
		return ModeConservative, true
	case "aggressive":
		return ModeAggressive, true
	default:
		return ModeNone, false
	}
}
