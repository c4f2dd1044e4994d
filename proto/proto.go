package proto

import "github.com/hasbyte1/go-compat-utils/coll"

// Members is a named member set, copied onto prototypes and objects.
type Members = map[string]any

// Method is a callable prototype member. It receives the object the call
// was dispatched through, so an inherited method sees the child instance.
type Method func(self *Object, args ...any) any

// ─────────────────────────────────────────────────────────────────────────────
// Type
// ─────────────────────────────────────────────────────────────────────────────

// Type is a constructible: a named factory for Objects together with the
// prototype its instances delegate to.
type Type struct {
	name  string
	init  func(*Object, ...any)
	proto *Prototype
}

// NewType creates a root Type with a fresh, empty prototype. init, when
// non-nil, runs against every instance produced by [Type.New].
func NewType(name string, init func(*Object, ...any)) *Type {
	t := &Type{name: name, init: init}
	t.proto = &Prototype{members: Members{}, ctor: t}
	return t
}

// Name returns the type's name.
func (t *Type) Name() string { return t.name }

// Proto returns the type's current prototype.
func (t *Type) Proto() *Prototype { return t.proto }

// New constructs an instance of t and runs t's init function on it.
func (t *Type) New(args ...any) *Object {
	o := &Object{typ: t, proto: t.proto, own: Members{}}
	if t.init != nil {
		t.init(o, args...)
	}
	return o
}

// ─────────────────────────────────────────────────────────────────────────────
// Prototype
// ─────────────────────────────────────────────────────────────────────────────

// Prototype is a member table with a parent link. Lookups not satisfied
// here fall through to the parent.
type Prototype struct {
	members Members
	parent  *Prototype
	ctor    *Type
	super   *Prototype
}

// Define sets a single member on p, shadowing any parent member of the
// same name.
func (p *Prototype) Define(name string, member any) {
	p.members[name] = member
}

// Extend destructively copies props onto p.
func (p *Prototype) Extend(props Members) {
	coll.Extend(p.members, props)
}

// Own returns the member defined directly on p, excluding the chain.
func (p *Prototype) Own(name string) (any, bool) {
	v, ok := p.members[name]
	return v, ok
}

// Lookup resolves name on p or, failing that, anywhere up the chain.
func (p *Prototype) Lookup(name string) (any, bool) {
	for q := p; q != nil; q = q.parent {
		if v, ok := q.members[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Constructor returns the Type this prototype belongs to.
func (p *Prototype) Constructor() *Type { return p.ctor }

// Parent returns the next prototype in the chain, or nil at a root.
func (p *Prototype) Parent() *Prototype { return p.parent }

// Super returns the parent Type's prototype as captured by [Inherit],
// giving explicit access to the parent's implementation even after
// shadowing. Nil for root prototypes.
func (p *Prototype) Super() *Prototype { return p.super }

// ─────────────────────────────────────────────────────────────────────────────
// Inherit
// ─────────────────────────────────────────────────────────────────────────────

// Inherit replaces child's prototype with a new one whose chain includes
// parent's prototype. Unshadowed member lookups on a child instance fall
// through to the parent; the new prototype's constructor identifies child,
// and its Super records parent's prototype for explicit delegation.
//
// Optional props are destructively copied onto the new prototype, so
// explicitly supplied members win over whatever the parent provides.
//
// Inherit is meant to run once per type relationship, at definition time.
// Instances constructed before the call keep the prototype they were born
// with.
func Inherit(child, parent *Type, props ...Members) {
	base := &Prototype{
		members: Members{},
		parent:  parent.proto,
		ctor:    child,
		super:   parent.proto,
	}
	for _, m := range props {
		coll.Extend(base.members, m)
	}
	child.proto = base
}

// ─────────────────────────────────────────────────────────────────────────────
// Object
// ─────────────────────────────────────────────────────────────────────────────

// Object is an instance: own members plus the prototype chain of the Type
// that constructed it.
type Object struct {
	typ   *Type
	proto *Prototype
	own   Members
}

// Type returns the Type that constructed o.
func (o *Object) Type() *Type { return o.typ }

// Super returns the Super of o's prototype; see [Prototype.Super].
func (o *Object) Super() *Prototype { return o.proto.super }

// Get resolves name on o's own members first, then up the prototype chain.
func (o *Object) Get(name string) (any, bool) {
	if v, ok := o.own[name]; ok {
		return v, true
	}
	return o.proto.Lookup(name)
}

// Set defines an own member on o, shadowing the chain for this instance.
func (o *Object) Set(name string, v any) {
	o.own[name] = v
}

// Call resolves name and invokes it as a [Method] with o as the receiver.
// The second return is false when the member is absent or not a Method.
func (o *Object) Call(name string, args ...any) (any, bool) {
	v, ok := o.Get(name)
	if !ok {
		return nil, false
	}
	m, ok := v.(Method)
	if !ok {
		return nil, false
	}
	return m(o, args...), true
}

// IsA reports whether t's prototype participates in o's chain — the
// instanceof analog. Always true for o's own Type.
func (o *Object) IsA(t *Type) bool {
	if t == nil {
		return false
	}
	for p := o.proto; p != nil; p = p.parent {
		if p == t.proto || p.ctor == t {
			return true
		}
	}
	return false
}
