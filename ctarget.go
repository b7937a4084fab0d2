package dbuscodegen

import "strings"

// CTarget emits C type text, in the style of the nih-dbus-tool
// generator this package's algorithms are grounded on. It is the only
// [Target] implementation this package provides; callers targeting a
// different output language supply their own.
type CTarget struct{}

var _ Target = CTarget{}

// TypeOf returns the C type holding a value of the basic, struct, or
// dict-entry type at cur.
func (CTarget) TypeOf(cur Cursor) string {
	switch cur.Tag() {
	case TagByte:
		return "uint8_t"
	case TagBoolean:
		return "int"
	case TagInt16:
		return "int16_t"
	case TagUint16:
		return "uint16_t"
	case TagInt32:
		return "int32_t"
	case TagUint32:
		return "uint32_t"
	case TagInt64:
		return "int64_t"
	case TagUint64:
		return "uint64_t"
	case TagDouble:
		return "double"
	case TagString, TagObjectPath, TagSignature:
		return "char *"
	case TagUnixFD:
		return "int"
	case TagStruct, TagDictEntry:
		return "Struct *"
	default:
		panic("dbuscodegen: TypeOf called on tag with no scalar C representation: " + cur.Tag().String())
	}
}

// TypeConstant returns the wire-protocol type-constant token for tag.
func (CTarget) TypeConstant(tag Tag) string {
	switch tag {
	case TagByte:
		return "DBUS_TYPE_BYTE"
	case TagBoolean:
		return "DBUS_TYPE_BOOLEAN"
	case TagInt16:
		return "DBUS_TYPE_INT16"
	case TagUint16:
		return "DBUS_TYPE_UINT16"
	case TagInt32:
		return "DBUS_TYPE_INT32"
	case TagUint32:
		return "DBUS_TYPE_UINT32"
	case TagInt64:
		return "DBUS_TYPE_INT64"
	case TagUint64:
		return "DBUS_TYPE_UINT64"
	case TagDouble:
		return "DBUS_TYPE_DOUBLE"
	case TagString:
		return "DBUS_TYPE_STRING"
	case TagObjectPath:
		return "DBUS_TYPE_OBJECT_PATH"
	case TagSignature:
		return "DBUS_TYPE_SIGNATURE"
	case TagUnixFD:
		return "DBUS_TYPE_UNIX_FD"
	case TagVariant:
		return "DBUS_TYPE_VARIANT"
	case TagArray:
		return "DBUS_TYPE_ARRAY"
	case TagStruct:
		return "DBUS_TYPE_STRUCT"
	case TagDictEntry:
		return "DBUS_TYPE_DICT_ENTRY"
	default:
		panic("dbuscodegen: TypeConstant called on invalid tag")
	}
}

// Pointer wraps t with one additional level of pointer indirection.
func (CTarget) Pointer(t string) string {
	return t + " *"
}

// Const marks t const, unless it already is.
func (CTarget) Const(t string) string {
	if strings.HasPrefix(t, "const ") {
		return t
	}
	return "const " + t
}
