package dbuscodegen

// Function wraps one top-level [Generate] call into a complete C
// function declaration: a signature built from the generated Inputs,
// the generated Locals declared at the top of the body, the
// marshalling statements themselves, and a trailing success return.
// The function always takes the message iterator to append to as its
// first parameter, named "iter".
func Function(cfg Config, sig Signature, funcName, valueName string) (string, error) {
	body, vars, err := Generate(cfg, sig.Cursor(), valueName)
	if err != nil {
		return "", err
	}

	var b builder

	b.s("int\n")
	b.f("%s (DBusMessageIter *iter", funcName)
	for _, in := range vars.Inputs {
		b.f(", %s %s", in.Type, in.Name)
	}
	b.s(")\n{\n")

	for _, l := range vars.Locals {
		b.f("  %s %s;\n", l.Type, l.Name)
	}
	if len(vars.Locals) > 0 {
		b.s("\n")
	}

	b.s(indent(body, 1))
	b.s("\n  return 1;\n}\n")

	return b.String(), nil
}
