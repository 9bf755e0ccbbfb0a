package reach

import "sort"

// Engine is an incremental class/method dependency graph paired with a
// tree-shaker policy fixed at construction. It is not safe for
// concurrent use — a host ingesting classes from multiple workers must
// serialize calls to Add and to the query methods with respect to each
// other (spec.md §5).
type Engine struct {
	mode TreeShakerMode

	classNodes  map[string]*ClassNode
	methodNodes map[methodKey]*MethodNode
	roots       map[string]struct{}

	reachableCache map[nodeKey]struct{}
}

// New constructs an empty engine pinned to mode.
func New(mode TreeShakerMode) *Engine {
	return &Engine{
		mode:        mode,
		classNodes:  make(map[string]*ClassNode),
		methodNodes: make(map[methodKey]*MethodNode),
		roots:       make(map[string]struct{}),
	}
}

// Mode returns the policy this engine was constructed with.
func (e *Engine) Mode() TreeShakerMode { return e.mode }

func (e *Engine) resolveClass(name string) *ClassNode {
	if c, ok := e.classNodes[name]; ok {
		return c
	}
	c := newClassNode(name)
	e.classNodes[name] = c
	return c
}

func (e *Engine) resolveMethod(owner, name, desc string) *MethodNode {
	k := methodKey{owner: owner, name: name, desc: desc}
	if m, ok := e.methodNodes[k]; ok {
		return m
	}
	m := newMethodNode(owner, name, desc)
	e.methodNodes[k] = m
	// A method always belongs to a class; touching the owner here
	// keeps GetAllClasses complete even for methods declared on
	// classes only ever seen as an invoke/super-method target.
	e.resolveClass(owner)
	return m
}

// Add ingests one compiled class, wiring its declared methods and
// dependencies into the graph per spec.md §4.1.1. It is idempotent in
// graph content for equal inputs.
func (e *Engine) Add(class Clazz, isRoot bool) {
	e.reachableCache = nil

	cls := e.resolveClass(class.InternalName)
	if isRoot {
		e.roots[class.InternalName] = struct{}{}
	}

	for _, dep := range class.Info.Dependencies {
		e.addDependencyEdge(cls.key(), dep, false)
	}

	for _, m := range class.Info.Methods {
		e.addMethod(cls, class.Info, m, isRoot)
	}
}

func (e *Engine) addMethod(cls *ClassNode, info ClazzInfo, m MethodInfo, isRoot bool) {
	strongPin := isStrongClassToMethod(cls.name, info, m, isRoot)

	method := e.resolveMethod(cls.name, m.Name, m.Desc)
	method.markLinked(m.IsWeaklyLinked, m.IsStronglyLinked)

	classToMethod := method.key()
	if strongPin {
		cls.strong.add(classToMethod)
	} else {
		cls.weak.add(classToMethod)
	}

	// Keeping a method implies keeping its declaring class.
	method.strong.add(cls.key())

	for _, dep := range m.Dependencies {
		e.addDependencyEdge(method.key(), dep, true)
	}
}

// addDependencyEdge wires one Dependency from source, per the edge-type
// table in spec.md §4.1.1. methodLevel distinguishes a SuperMethod
// dependency declared on a method (reversed, always strong) from one
// declared at the class level (not reversed, weak per d.IsWeak).
func (e *Engine) addDependencyEdge(source nodeKey, dep Dependency, methodLevel bool) {
	switch dep.Kind {
	case DependencyPlain:
		target := e.resolveClass(dep.ClassName)
		e.addEdge(source, target.key(), dep.IsWeak)

	case DependencyInvokeMethod:
		target := e.resolveMethod(dep.ClassName, dep.MethodName, dep.MethodDesc)
		e.addEdge(source, target.key(), dep.IsWeak)

	case DependencySuperMethod:
		target := e.resolveMethod(dep.ClassName, dep.MethodName, dep.MethodDesc)
		if methodLevel {
			// "if the super method is reached, the overriding method
			// must be reached too" — reversed and always strong.
			e.addEdge(target.key(), source, false)
		} else {
			e.addEdge(source, target.key(), dep.IsWeak)
		}
	}
}

func (e *Engine) addEdge(from, to nodeKey, weak bool) {
	src := e.nodeByKey(from)
	if src == nil {
		return
	}
	strong, weakSet := src.edgeSets()
	if weak {
		weakSet.add(to)
	} else {
		strong.add(to)
	}
}

func (e *Engine) nodeByKey(k nodeKey) node {
	switch k.kind {
	case kindClass:
		if c, ok := e.classNodes[k.class]; ok {
			return c
		}
	case kindMethod:
		if m, ok := e.methodNodes[k.method]; ok {
			return m
		}
	}
	return nil
}

// edgesOf returns the strong and weak outgoing edge sets of the node
// identified by k, or empty sets if k is unknown (should not happen
// for a key produced by this engine's own traversal).
func (e *Engine) edgesOf(k nodeKey) (strong, weak edgeSet) {
	n := e.nodeByKey(k)
	if n == nil {
		return newEdgeSet(), newEdgeSet()
	}
	return n.edgeSets()
}

// isStrongClassToMethod implements the strong-pin rule of spec.md
// §4.1.1: the edge from a class to one of its declared methods is
// strong when any of the listed conditions hold, weak otherwise. This
// affects only the edge weight — it never sets the method's own
// stronglyLinked bit (spec.md §9 deliberately keeps the two separate).
func isStrongClassToMethod(owner string, info ClazzInfo, m MethodInfo, isRoot bool) bool {
	if isRoot {
		return true
	}
	if m.IsCallback {
		return true
	}
	if m.IsStatic && m.Name == "<clinit>" && m.Desc == "()V" {
		return true
	}
	if info.IsEnum && m.IsStatic && m.Name == "values" && m.Desc == "()[L"+owner+";" {
		return true
	}
	if info.IsStruct && m.IsStatic && m.Name == "sizeOf" && m.Desc == "()I" {
		return true
	}
	return false
}

// FindReachableClasses returns the set of reachable class internal
// names under this engine's mode.
func (e *Engine) FindReachableClasses() map[string]struct{} {
	e.ensureTraversed()
	out := make(map[string]struct{})
	for k := range e.reachableCache {
		if k.kind == kindClass {
			out[k.class] = struct{}{}
		}
	}
	return out
}

// MethodTriple is the (owner, name, descriptor) identity of a reachable
// method, as named in spec.md §6's egress contract.
type MethodTriple struct {
	Owner string
	Name  string
	Desc  string
}

// FindReachableMethods returns the set of reachable method triples
// under this engine's mode.
func (e *Engine) FindReachableMethods() map[MethodTriple]struct{} {
	e.ensureTraversed()
	out := make(map[MethodTriple]struct{})
	for k := range e.reachableCache {
		if k.kind == kindMethod {
			out[MethodTriple{Owner: k.method.owner, Name: k.method.name, Desc: k.method.desc}] = struct{}{}
		}
	}
	return out
}

func (e *Engine) ensureTraversed() {
	if e.reachableCache != nil {
		return
	}
	e.reachableCache = traverse(e, e.mode)
}

// GetAllClasses returns the names of every ClassNode ever created, in
// ascending lexicographic order.
func (e *Engine) GetAllClasses() []string {
	names := make([]string, 0, len(e.classNodes))
	for name := range e.classNodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MethodNode looks up a previously ingested method by its identity,
// returning nil if it has never been referenced. Exposed for
// diagnostics and tests; not part of the engine's core query surface.
func (e *Engine) MethodNode(owner, name, desc string) *MethodNode {
	return e.methodNodes[methodKey{owner: owner, name: name, desc: desc}]
}
