package dbuscodegen

import (
	"strings"
	"testing"
)

func TestFunction(t *testing.T) {
	sig := MustParseSignature("(is)")
	code, err := Function(testConfig(), sig, "marshal_point", "value")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(code, "marshal_point (DBusMessageIter *iter, const Struct * value)") {
		t.Errorf("function declaration missing or malformed:\n%s", code)
	}
	if !strings.Contains(code, "DBusMessageIter value_iter;") {
		t.Errorf("function does not declare value_iter local:\n%s", code)
	}
	if !strings.Contains(code, "int32_t value_item0;") {
		t.Errorf("function does not declare value_item0 local:\n%s", code)
	}
	if !strings.Contains(code, "const char * value_item1;") {
		t.Errorf("function does not declare value_item1 local:\n%s", code)
	}
	if !strings.HasSuffix(strings.TrimRight(code, "\n"), "return 1;\n}") {
		t.Errorf("function does not end with return 1; }:\n%s", code)
	}
}

func TestFunctionVariantError(t *testing.T) {
	sig := MustParseSignature("v")
	if _, err := Function(testConfig(), sig, "marshal_variant", "value"); err == nil {
		t.Error("Function(variant) succeeded, want error")
	}
}
