// Package proto builds lightweight single-parent inheritance chains for
// environments without a native class mechanism.
//
// A [Type] is a constructible: it carries a name, an optional init function,
// and a [Prototype] — a member table with a parent link. Member lookups on
// an [Object] consult the object's own members first, then walk the
// prototype chain.
//
//	Animal := proto.NewType("Animal", nil)
//	Animal.Proto().Define("speak", proto.Method(func(self *proto.Object, _ ...any) any {
//	    return "..."
//	}))
//
//	Dog := proto.NewType("Dog", nil)
//	proto.Inherit(Dog, Animal, proto.Members{
//	    "speak": proto.Method(func(self *proto.Object, _ ...any) any {
//	        return "woof"
//	    }),
//	})
//
//	d := Dog.New()
//	d.IsA(Animal) // true
//	d.Call("speak") // "woof", shadowing Animal's implementation
//
// [Inherit] records the parent's prototype as the child prototype's Super,
// so a shadowing method can still delegate explicitly:
//
//	impl, _ := d.Super().Lookup("speak")
//	impl.(proto.Method)(d) // "..."
//
// Relationships are established once, at type-definition time, and are not
// meant to change afterwards. Passing nil Types to Inherit or New is a
// caller contract violation and is not guarded.
package proto
