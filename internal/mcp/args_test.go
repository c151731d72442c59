package mcp

import (
	"strings"
	"testing"
)

func TestStringArg(t *testing.T) {
	t.Parallel()
	req := callReq("x", map[string]any{"term": "breaking bad", "empty": ""})

	if v, ok := stringArg(req, "term"); !ok || v != "breaking bad" {
		t.Fatalf("stringArg(term) = %q, %v", v, ok)
	}
	if _, ok := stringArg(req, "empty"); ok {
		t.Fatal("empty string must not count as present")
	}
	if _, ok := stringArg(req, "missing"); ok {
		t.Fatal("missing key must not count as present")
	}
}

func TestIntArg(t *testing.T) {
	t.Parallel()
	req := callReq("x", map[string]any{
		"float": float64(42),
		"str":   "42",
	})

	if v, ok := intArg(req, "float"); !ok || v != 42 {
		t.Fatalf("intArg(float) = %d, %v", v, ok)
	}
	if _, ok := intArg(req, "str"); ok {
		t.Fatal("string value must not parse as int")
	}
	if _, ok := intArg(req, "missing"); ok {
		t.Fatal("missing key must not count as present")
	}
}

func TestRequireArgs_ErrorsNameTheKey(t *testing.T) {
	t.Parallel()
	req := callReq("x", map[string]any{})

	if _, err := requireString(req, "term"); err == nil || !strings.Contains(err.Error(), "term") {
		t.Fatalf("requireString error = %v", err)
	}
	if _, err := requireInt(req, "series_id"); err == nil || !strings.Contains(err.Error(), "series_id") {
		t.Fatalf("requireInt error = %v", err)
	}
}
