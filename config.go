package dbuscodegen

import "fmt"

// Config bundles the target-language conventions and caller hooks
// that [Generate] needs beyond the signature itself.
type Config struct {
	// Target describes the output language's type spellings. Required.
	Target Target

	// OOM is the statement block inlined after every fallible call in
	// the generated code (container open/close and basic append), run
	// when that call reports failure. May be empty, in which case the
	// failure branch is an empty block and execution simply continues;
	// most targets will want at least a "return -1;" or "goto error;"
	// statement here.
	OOM OOMBlock

	// FieldName overrides the name used to project the k'th member
	// (0-indexed) of a struct or dict-entry out of its containing
	// value, in both the locals it generates and the field-access
	// expressions (value->item0, value->item1, ...) it writes against
	// them. If nil, members are named "item" followed by their
	// 0-based position, matching the original generator this package
	// is grounded on. Overriding this hook is how a caller whose
	// struct definitions carry real field names (rather than the
	// positional item0/item1/... the signature alone can produce)
	// keeps generated code consistent with them.
	FieldName func(i int) string
}

// fieldName returns the name for the k'th member (0-indexed),
// applying the default when c.FieldName is nil.
func (c Config) fieldName(k int) string {
	if c.FieldName != nil {
		return c.FieldName(k)
	}
	return fmt.Sprintf("item%d", k)
}
