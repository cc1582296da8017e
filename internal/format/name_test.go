package format

import (
	"strings"
	"testing"
)

func TestValidNodeName(t *testing.T) {
	valid := []string{
		"cpus",
		"cpu@0",
		"memory@80000000",
		"a",
		"pcie-controller",
		"flash@0,0....",
		"interrupt-controller@f00",
		"X_Y+Z,w.v-u",
		strings.Repeat("a", 31),
		strings.Repeat("a", 31) + "@ffff",
	}
	for _, name := range valid {
		if !ValidNodeName(name) {
			t.Errorf("ValidNodeName(%q) = false, want true", name)
		}
	}

	invalid := []string{
		"",
		"@0",
		"cpu@",
		"cpu@0@1",
		"has space",
		"slash/inside",
		"nul\x00",
		strings.Repeat("a", 32),
		strings.Repeat("a", 32) + "@0",
	}
	for _, name := range invalid {
		if ValidNodeName(name) {
			t.Errorf("ValidNodeName(%q) = true, want false", name)
		}
	}
}

func TestLookupString(t *testing.T) {
	block := []byte("compatible\x00reg\x00")
	if s, ok := LookupString(block, 0); !ok || s != "compatible" {
		t.Fatalf("LookupString(0) = %q, %v", s, ok)
	}
	if s, ok := LookupString(block, 11); !ok || s != "reg" {
		t.Fatalf("LookupString(11) = %q, %v", s, ok)
	}
	// Mid-string offsets resolve to a suffix; the format allows this.
	if s, ok := LookupString(block, 3); !ok || s != "patible" {
		t.Fatalf("LookupString(3) = %q, %v", s, ok)
	}
	if _, ok := LookupString(block, uint32(len(block))); ok {
		t.Fatal("expected lookup past end to fail")
	}
	if _, ok := LookupString([]byte("unterminated"), 0); ok {
		t.Fatal("expected unterminated string to fail")
	}
}
