package prefixed

import (
	"math"
	"reflect"
)

type memberKind uint8

const (
	kindMapKey memberKind = iota
	kindField
	kindMethod
)

// Member is a resolved host member: a map entry, a struct field, or a
// bound method. The zero Member (from a failed Resolve) is not usable.
type Member struct {
	kind memberKind
	name string
	host reflect.Value
	val  reflect.Value
}

// Name returns the member's name as it exists on the host — the matched
// candidate, in its exported spelling when that is what matched.
func (m Member) Name() string { return m.name }

// Callable reports whether the member can be invoked: a method, or a map
// entry / field holding a func value.
func (m Member) Callable() bool {
	v := m.value()
	return v.IsValid() && v.Kind() == reflect.Func && !v.IsNil()
}

// Get returns the member's current value.
func (m Member) Get() any {
	if !m.val.IsValid() {
		return nil
	}
	return m.val.Interface()
}

// Set assigns val to the member and reports whether the write happened.
// Map entries are always assignable; struct fields only when the host was
// a pointer; methods never are. A val that is neither assignable nor
// convertible to the member's type is refused.
func (m Member) Set(val any) bool {
	switch m.kind {
	case kindMapKey:
		vv, ok := coerce(val, m.host.Type().Elem())
		if !ok {
			return false
		}
		kv := reflect.ValueOf(m.name).Convert(m.host.Type().Key())
		m.host.SetMapIndex(kv, vv)
		return true
	case kindField:
		if !m.val.CanSet() {
			return false
		}
		vv, ok := coerce(val, m.val.Type())
		if !ok {
			return false
		}
		m.val.Set(vv)
		return true
	}
	return false
}

// Call invokes the member with the host as receiver, forwarding args, and
// returns the call's result (the first result for multi-valued functions,
// nil for none). Calling a non-callable member, or passing arguments the
// callee cannot accept, is a caller contract violation and panics like any
// bad reflective call.
func (m Member) Call(args ...any) any {
	fn := m.value()
	out := fn.Call(callArgs(fn.Type(), args))
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

// Func returns a bound wrapper: calling it invokes the member with the
// host as receiver, forwarding arguments.
func (m Member) Func() func(args ...any) any {
	return func(args ...any) any { return m.Call(args...) }
}

// value unwraps interface-typed storage (map[string]any entries, any
// fields) down to the concrete member value.
func (m Member) value() reflect.Value {
	v := m.val
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem()
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Reflection plumbing
// ─────────────────────────────────────────────────────────────────────────────

// coerce adapts val for assignment to t: exact/assignable values pass
// through, convertible ones are converted, nil maps to t's zero value for
// nilable kinds.
func coerce(val any, t reflect.Type) (reflect.Value, bool) {
	if val == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(val)
	if v.Type().AssignableTo(t) {
		return v, true
	}
	if v.Type().ConvertibleTo(t) {
		return v.Convert(t), true
	}
	return reflect.Value{}, false
}

// callArgs adapts an []any argument list to fn's parameter types,
// converting where the kinds allow it. Mismatches are left for reflect to
// reject.
func callArgs(ft reflect.Type, args []any) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := paramType(ft, i)
		if a == nil {
			if pt != nil {
				in[i] = reflect.Zero(pt)
			}
			continue
		}
		v := reflect.ValueOf(a)
		if pt != nil && !v.Type().AssignableTo(pt) && v.Type().ConvertibleTo(pt) {
			v = v.Convert(pt)
		}
		in[i] = v
	}
	return in
}

func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	if i < ft.NumIn() {
		return ft.In(i)
	}
	return nil
}

// truthy is dynamic-language truthiness: nil, false, numeric zero, the
// empty string, and NaN are falsy; everything else, including empty
// containers, is truthy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}
