package dbuscodegen

import "fmt"

// generateBasic emits code that appends the value of a basic-typed
// variable named name onto the message iterator named "iter". The
// emitted code is a single fallible statement: the one input variable
// it requires is name itself, typed per the target's scalar or
// string-pointer convention. Basic-but-not-fixed tags (strings,
// object paths, signatures) are pointer-valued, so their input is
// const-qualified to promise the emitted code never modifies the
// value through it.
func generateBasic(cfg Config, cur Cursor, name string) (string, Vars, error) {
	var vars Vars
	typ := cfg.Target.TypeOf(cur)
	if !IsFixed(cur.Tag()) {
		typ = cfg.Target.Const(typ)
	}
	vars.addInput(typ, name)

	var b builder
	b.f("if (!dbus_message_iter_append_basic (iter, %s, &%s))\n",
		cfg.Target.TypeConstant(cur.Tag()), name)
	b.s("{\n")
	b.s(cfg.OOM.Indented(1))
	b.s("}\n")

	return b.String(), vars, nil
}

// builder is a small byte-buffer text builder in the style of
// cmd/dbus/util.go's indenter, giving generators terse s()/f() verbs
// instead of repeated WriteString/Fprintf calls.
type builder struct {
	buf []byte
}

func (b *builder) s(s string) {
	b.buf = append(b.buf, s...)
}

func (b *builder) f(format string, args ...any) {
	b.s(fmt.Sprintf(format, args...))
}

func (b *builder) String() string {
	return string(b.buf)
}
