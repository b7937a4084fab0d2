package dbuscodegen

import "github.com/creachadair/mds/mapset"

// A Tag identifies the kind of a signature element.
type Tag int

const (
	TagInvalid Tag = iota
	TagByte
	TagBoolean
	TagInt16
	TagUint16
	TagInt32
	TagUint32
	TagInt64
	TagUint64
	TagDouble
	TagString
	TagObjectPath
	TagSignature
	TagUnixFD
	TagVariant
	TagArray
	TagStruct
	TagDictEntry
)

func (t Tag) String() string {
	switch t {
	case TagByte:
		return "byte"
	case TagBoolean:
		return "boolean"
	case TagInt16:
		return "int16"
	case TagUint16:
		return "uint16"
	case TagInt32:
		return "int32"
	case TagUint32:
		return "uint32"
	case TagInt64:
		return "int64"
	case TagUint64:
		return "uint64"
	case TagDouble:
		return "double"
	case TagString:
		return "string"
	case TagObjectPath:
		return "object path"
	case TagSignature:
		return "signature"
	case TagUnixFD:
		return "unix fd"
	case TagVariant:
		return "variant"
	case TagArray:
		return "array"
	case TagStruct:
		return "struct"
	case TagDictEntry:
		return "dict entry"
	default:
		return "invalid"
	}
}

// basicTags is the closed set of tags serialized by a single append
// operation: scalars plus strings. Orthogonal to fixedTags: strings,
// object paths, and signatures are basic but not fixed-size.
var basicTags = mapset.New(
	TagByte, TagBoolean, TagInt16, TagUint16, TagInt32, TagUint32,
	TagInt64, TagUint64, TagDouble, TagString, TagObjectPath,
	TagSignature, TagUnixFD,
)

// fixedTags is the closed set of tags whose value occupies a
// statically known number of bytes. Strings, object paths, and
// signatures are basic but not fixed, since their length varies.
var fixedTags = mapset.New(
	TagByte, TagBoolean, TagInt16, TagUint16, TagInt32, TagUint32,
	TagInt64, TagUint64, TagDouble, TagUnixFD,
)

// IsBasic reports whether t is serialized by a single append
// operation.
func IsBasic(t Tag) bool {
	return basicTags.Has(t)
}

// IsFixed reports whether t occupies a statically known number of
// bytes. IsFixed is a stricter subset of IsBasic: every fixed type is
// basic, but strings, object paths, and signatures are basic without
// being fixed.
func IsFixed(t Tag) bool {
	return fixedTags.Has(t)
}

// tagByChar maps the single-character signature grammar tokens to
// their Tag, for the types that don't introduce a nested subtree.
var tagByChar = map[byte]Tag{
	'y': TagByte,
	'b': TagBoolean,
	'n': TagInt16,
	'q': TagUint16,
	'i': TagInt32,
	'u': TagUint32,
	'x': TagInt64,
	't': TagUint64,
	'd': TagDouble,
	's': TagString,
	'o': TagObjectPath,
	'g': TagSignature,
	'h': TagUnixFD,
	'v': TagVariant,
}
