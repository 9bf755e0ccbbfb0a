package reach

// methodKey uniquely identifies a MethodNode by its declaring class,
// name and descriptor. A tuple key sidesteps the ambiguity of the
// flat "owner.name.desc" string key when a class name legitimately
// contains a dot; class internal names use '/' separators in practice,
// but the tuple avoids the question entirely.
type methodKey struct {
	owner string
	name  string
	desc  string
}

// ClassNode is a node identified by a class internal name, e.g.
// "java/lang/String".
type ClassNode struct {
	name string

	strong edgeSet
	weak   edgeSet
}

func newClassNode(name string) *ClassNode {
	return &ClassNode{name: name, strong: newEdgeSet(), weak: newEdgeSet()}
}

// Name returns the class internal name.
func (c *ClassNode) Name() string { return c.name }

func (c *ClassNode) key() nodeKey { return nodeKey{kind: kindClass, class: c.name} }

// MethodNode is a node identified by the triple (owner, name, descriptor).
// weaklyLinked and stronglyLinked are monotonic: once set true they
// never return to false.
type MethodNode struct {
	owner string
	name  string
	desc  string

	weaklyLinked   bool
	stronglyLinked bool

	strong edgeSet
	weak   edgeSet
}

func newMethodNode(owner, name, desc string) *MethodNode {
	return &MethodNode{
		owner:  owner,
		name:   name,
		desc:   desc,
		strong: newEdgeSet(),
		weak:   newEdgeSet(),
	}
}

// Owner returns the declaring class's internal name.
func (m *MethodNode) Owner() string { return m.owner }

// Name returns the method name.
func (m *MethodNode) Name() string { return m.name }

// Desc returns the method descriptor.
func (m *MethodNode) Desc() string { return m.desc }

// WeaklyLinked reports whether upstream metadata flagged this method
// as eligible for dropping if only weakly referenced.
func (m *MethodNode) WeaklyLinked() bool { return m.weaklyLinked }

// StronglyLinked reports whether upstream metadata flagged this method
// as mandatory whenever weakly referenced under the aggressive policy.
func (m *MethodNode) StronglyLinked() bool { return m.stronglyLinked }

// markLinked ORs in new link flags monotonically (false -> true only).
func (m *MethodNode) markLinked(weak, strong bool) {
	if weak {
		m.weaklyLinked = true
	}
	if strong {
		m.stronglyLinked = true
	}
}

func (m *MethodNode) key() nodeKey {
	return nodeKey{kind: kindMethod, method: methodKey{owner: m.owner, name: m.name, desc: m.desc}}
}

// node is the common identity + edge-storage surface of ClassNode and
// MethodNode, letting the engine and traversal operate on either
// variant without a type switch at every call site.
type node interface {
	key() nodeKey
	edgeSets() (strong, weak edgeSet)
}

func (c *ClassNode) edgeSets() (strong, weak edgeSet) { return c.strong, c.weak }
func (m *MethodNode) edgeSets() (strong, weak edgeSet) { return m.strong, m.weak }

// nodeKind discriminates the two node variants for the unified nodeKey
// used by edges and the visited set.
type nodeKind int

const (
	kindClass nodeKind = iota
	kindMethod
)

// nodeKey is a comparable identity usable as a map key for either node
// variant, letting edges and the traversal's visited set stay
// untyped with respect to which kind of node they reference.
type nodeKey struct {
	kind   nodeKind
	class  string
	method methodKey
}

// edgeSet is a set of node keys; duplicates collapse, matching the
// spec's "multiplicity is a set" edge invariant.
type edgeSet map[nodeKey]struct{}

func newEdgeSet() edgeSet { return make(edgeSet) }

func (s edgeSet) add(k nodeKey) { s[k] = struct{}{} }

func (s edgeSet) has(k nodeKey) bool {
	_, ok := s[k]
	return ok
}
