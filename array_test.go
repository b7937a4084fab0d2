package dbuscodegen

import (
	"strings"
	"testing"
)

func TestGenerateArrayOfFixedArray(t *testing.T) {
	sig := MustParseSignature("aai")
	code, vars, err := Generate(testConfig(), sig.Cursor(), "outer")
	if err != nil {
		t.Fatal(err)
	}

	wantNames := map[string]string{
		"outer":     "const int32_t * *",
		"outer_len": "const size_t *",
	}
	if len(vars.Inputs) != len(wantNames) {
		t.Fatalf("Inputs = %v, want %d entries", vars.Inputs, len(wantNames))
	}
	for _, in := range vars.Inputs {
		want, ok := wantNames[in.Name]
		if !ok {
			t.Errorf("unexpected input %q", in.Name)
			continue
		}
		if in.Type != want {
			t.Errorf("input %s type = %q, want %q", in.Name, in.Type, want)
		}
	}

	if !strings.Contains(code, "outer_element_len = outer_len[outer_i]") {
		t.Errorf("code does not index the parallel length array per element:\n%s", code)
	}
	if !strings.Contains(code, "outer_element = outer[outer_i]") {
		t.Errorf("code does not index the outer array per element:\n%s", code)
	}
}

func TestGenerateDictEntry(t *testing.T) {
	sig := MustParseSignature("a{si}")
	_, vars, err := Generate(testConfig(), sig.Cursor(), "m")
	if err != nil {
		t.Fatal(err)
	}
	if len(vars.Inputs) != 1 || vars.Inputs[0].Name != "m" {
		t.Fatalf("Inputs = %v, want exactly [m]", vars.Inputs)
	}
	if vars.Inputs[0].Type != "const Struct * *" {
		t.Errorf("dict input type = %q, want const Struct * *", vars.Inputs[0].Type)
	}
}
