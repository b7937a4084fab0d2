package dbuscodegen

import "fmt"

// Generate emits code that marshals a value named name, whose type is
// described by cur, onto the message iterator named "iter" in scope
// at the call site. It returns the generated statements and the
// ordered input and local variables they require.
//
// Generate returns an error only when cur names a tag this package
// does not know how to marshal on its own: TagVariant, whose contents
// are only knowable at runtime, and TagInvalid, which never appears in
// a successfully parsed [Signature]. Every other tag, including every
// container built from basic members, is handled by one of the three
// recursive generators this dispatches to.
func Generate(cfg Config, cur Cursor, name string) (string, Vars, error) {
	switch {
	case IsBasic(cur.Tag()):
		return generateBasic(cfg, cur, name)
	case cur.Tag() == TagArray:
		return generateArray(cfg, cur, name)
	case cur.Tag() == TagStruct, cur.Tag() == TagDictEntry:
		return generateStruct(cfg, cur, name)
	default:
		return "", Vars{}, fmt.Errorf("dbuscodegen: cannot generate marshalling code for %s", cur.Tag())
	}
}
