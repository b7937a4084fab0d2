package dbuscodegen

import (
	"testing"
)

func TestParseSignatureOK(t *testing.T) {
	tests := []struct {
		sig     string
		rootTag Tag
	}{
		{"y", TagByte},
		{"b", TagBoolean},
		{"s", TagString},
		{"i", TagInt32},
		{"ai", TagArray},
		{"aai", TagArray},
		{"(is)", TagStruct},
		{"a{sv}", TagArray},
		{"(a(ii)s)", TagStruct},
	}
	for _, tc := range tests {
		t.Run(tc.sig, func(t *testing.T) {
			sig, err := ParseSignature(tc.sig)
			if err != nil {
				t.Fatalf("ParseSignature(%q): %v", tc.sig, err)
			}
			if got := sig.Cursor().Tag(); got != tc.rootTag {
				t.Errorf("root tag = %s, want %s", got, tc.rootTag)
			}
			if got := sig.String(); got != tc.sig {
				t.Errorf("String() = %q, want %q", got, tc.sig)
			}
		})
	}
}

func TestParseSignatureErrors(t *testing.T) {
	tests := []string{
		"",
		"(",
		"()",
		"{sv}",    // dict entry outside array
		"a{vs}",   // non-basic dict key
		"(is",     // unterminated struct
		"Z",       // unknown tag
		"iz",      // trailing garbage
	}
	for _, sig := range tests {
		t.Run(sig, func(t *testing.T) {
			if _, err := ParseSignature(sig); err == nil {
				t.Errorf("ParseSignature(%q) succeeded, want error", sig)
			}
		})
	}
}

func TestCursorRecurseArray(t *testing.T) {
	sig := MustParseSignature("ai")
	cur := sig.Cursor()
	if cur.Tag() != TagArray {
		t.Fatalf("root tag = %s, want array", cur.Tag())
	}
	elem := cur.Recurse()
	if elem.Tag() != TagInt32 {
		t.Errorf("element tag = %s, want int32", elem.Tag())
	}
	if _, ok := elem.Next(); ok {
		t.Errorf("array element cursor reports a sibling, want none")
	}
}

func TestCursorRecurseStruct(t *testing.T) {
	sig := MustParseSignature("(isb)")
	cur := sig.Cursor()
	member := cur.Recurse()

	var tags []Tag
	for {
		tags = append(tags, member.Tag())
		next, ok := member.Next()
		if !ok {
			break
		}
		member = next
	}

	want := []Tag{TagInt32, TagString, TagBoolean}
	if len(tags) != len(want) {
		t.Fatalf("got %d members, want %d", len(tags), len(want))
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("member %d tag = %s, want %s", i, tags[i], want[i])
		}
	}
}

func TestCursorRecursePanicsOnBasic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Recurse on a basic tag did not panic")
		}
	}()
	MustParseSignature("i").Cursor().Recurse()
}

func TestParseSignatureCaches(t *testing.T) {
	a, err := ParseSignature("a(is)")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseSignature("a(is)")
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Errorf("cached parse mismatch: %q vs %q", a.String(), b.String())
	}
}
