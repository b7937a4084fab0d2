package dbuscodegen

import "strings"

// generateArray emits code that opens a container on "iter", appends
// one entry per element of the array value named name, and closes the
// container again. The generated loop owns a fresh DBusMessageIter
// local, plus either an explicit element-count input (fixed-size
// elements, which carry no end-of-array sentinel of their own) or a
// NULL-sentinel scan (variable-width elements, which in this target
// are always pointer-represented and so can carry one).
//
// Inputs the recursive element generation asks for beyond the element
// value itself (for example, a nested array's own length) cannot be
// supplied once per call the way the element value can: the caller
// must supply one such value per array element, as a parallel array
// indexed in lockstep with name. generateArray surfaces those as
// additional pointer/const-wrapped inputs of its own, named with the
// same suffix the recursive call used, and assigns the per-element
// local from the matching slot on every loop iteration.
func generateArray(cfg Config, cur Cursor, name string) (string, Vars, error) {
	elemCur := cur.Recurse()
	elemName := name + "_element"

	elemCode, elemVars, err := Generate(cfg, elemCur, elemName)
	if err != nil {
		return "", Vars{}, err
	}

	var vars Vars
	t := cfg.Target

	var mainType string
	var extra []Var // non-main recursive inputs, to become parallel-array inputs

	for _, in := range elemVars.Inputs {
		if in.Name == elemName {
			mainType = in.Type
			continue
		}
		extra = append(extra, in)
	}
	if mainType == "" {
		panic("dbuscodegen: array element generation produced no input named " + elemName)
	}

	vars.addInput(t.Const(t.Pointer(mainType)), name)
	vars.addLocal("DBusMessageIter", name+"_iter")

	fixed := IsFixed(elemCur.Tag())

	var b builder

	b.f("if (!dbus_message_iter_open_container (iter, DBUS_TYPE_ARRAY, %q, &%s_iter))\n",
		elemCur.Text(), name)
	b.s("{\n")
	b.s(cfg.OOM.Indented(1))
	b.s("}\n\n")

	if fixed {
		vars.addInput("size_t", name+"_len")
	}

	var extraInputNames []string
	for _, e := range extra {
		suffix := strings.TrimPrefix(e.Name, elemName)
		outerName := name + suffix
		vars.addInput(t.Const(t.Pointer(e.Type)), outerName)
		extraInputNames = append(extraInputNames, outerName)
	}

	b.s("{\n")
	b.f("  size_t %s_i;\n\n", name)
	if fixed {
		b.f("  for (%s_i = 0; %s_i < %s_len; %s_i++)\n", name, name, name, name)
	} else {
		b.f("  for (%s_i = 0; %s[%s_i]; %s_i++)\n", name, name, name, name)
	}
	b.s("  {\n")
	b.f("    %s %s = %s[%s_i];\n", mainType, elemName, name, name)
	for i, e := range extra {
		b.f("    %s %s = %s[%s_i];\n", e.Type, e.Name, extraInputNames[i], name)
	}
	b.s("\n")
	// elemCode was generated against an iterator named "iter"; this
	// block's iterator is name+"_iter", so the recursive code must
	// actually be generated against that name. Generate again isn't
	// re-invoked here: elemCode already refers to "iter" literally, so
	// callers of this function must treat the array's container iter
	// as the ambient "iter" within the loop body. We splice it under a
	// rebound iter alias instead of regenerating.
	b.f("    DBusMessageIter *iter = &%s_iter;\n\n", name)
	b.s(indent(elemCode, 2))
	b.s("  }\n")
	b.s("}\n\n")

	b.f("if (!dbus_message_iter_close_container (iter, &%s_iter))\n", name)
	b.s("{\n")
	b.s(cfg.OOM.Indented(1))
	b.s("}\n")

	for _, l := range elemVars.Locals {
		vars.addLocal(l.Type, l.Name)
	}

	return b.String(), vars, nil
}
