package dbuscodegen

import "strings"

// generateStruct emits code that opens a struct or dict-entry
// container on "iter", appends each member in turn, and closes the
// container. Member inputs are never surfaced to the struct's own
// caller: they are promoted into the struct's Locals instead, each
// initialized by projecting the matching field out of the struct
// value (value->item0, value->item0_len, and so on, following
// [Config.FieldName]). The struct's own value is the only input
// generateStruct actually appends, added last so that a caller
// reading Inputs in order sees every member dependency resolve
// before the aggregate value that subsumes them, and const-qualified
// since struct/dict-entry values are always pointer-valued here.
func generateStruct(cfg Config, cur Cursor, name string) (string, Vars, error) {
	var vars Vars
	var b builder

	vars.addLocal("DBusMessageIter", name+"_iter")

	containerConst := "DBUS_TYPE_STRUCT"
	if cur.Tag() == TagDictEntry {
		containerConst = "DBUS_TYPE_DICT_ENTRY"
	}

	b.f("if (!dbus_message_iter_open_container (iter, %s, NULL, &%s_iter))\n",
		containerConst, name)
	b.s("{\n")
	b.s(cfg.OOM.Indented(1))
	b.s("}\n\n")

	member := cur.Recurse()
	k := 0
	for {
		field := cfg.fieldName(k)
		memberName := name + "_" + field

		memberCode, memberVars, err := Generate(cfg, member, memberName)
		if err != nil {
			return "", Vars{}, err
		}

		for _, in := range memberVars.Inputs {
			suffix := strings.TrimPrefix(in.Name, memberName)
			vars.addLocal(in.Type, in.Name)
			b.f("%s = %s->%s%s;\n", in.Name, name, field, suffix)
		}
		for _, l := range memberVars.Locals {
			vars.addLocal(l.Type, l.Name)
		}
		b.s("\n")

		b.f("{\n")
		b.f("  DBusMessageIter *iter = &%s_iter;\n\n", name)
		b.s(indent(memberCode, 1))
		b.s("}\n\n")

		next, ok := member.Next()
		if !ok {
			break
		}
		member = next
		k++
	}

	b.f("if (!dbus_message_iter_close_container (iter, &%s_iter))\n", name)
	b.s("{\n")
	b.s(cfg.OOM.Indented(1))
	b.s("}\n")

	vars.addInput(cfg.Target.Const(cfg.Target.TypeOf(cur)), name)

	return b.String(), vars, nil
}
