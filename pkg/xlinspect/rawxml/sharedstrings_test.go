package rawxml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sstHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="4" uniqueCount="4">`

func TestParseSharedStrings(t *testing.T) {
	doc := sstHeader +
		`<si><t>Name</t></si>` +
		`<si><t>Score</t></si>` +
		`<si><r><rPr><b/></rPr><t>Rich </t></r><r><t xml:space="preserve">text</t></r></si>` +
		`<si/>` +
		`<si><t>漢字</t><rPh sb="0" eb="2"><t>カンジ</t></rPh></si>` +
		`</sst>`

	sst, err := ParseSharedStrings(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseSharedStrings failed: %v", err)
	}

	expected := []string{"Name", "Score", "Rich text", "", "漢字"}
	if sst.Len() != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), sst.Len())
	}
	for i, want := range expected {
		got, ok := sst.At(i)
		if !ok || got != want {
			t.Errorf("At(%d) = %q, %v; expected %q", i, got, ok, want)
		}
	}
}

func TestParseSharedStringsEmptyDocument(t *testing.T) {
	sst, err := ParseSharedStrings(strings.NewReader(sstHeader + `</sst>`))
	if err != nil {
		t.Fatalf("ParseSharedStrings failed: %v", err)
	}
	if sst.Len() != 0 {
		t.Errorf("Expected empty table, got %d entries", sst.Len())
	}
}

func TestParseSharedStringsMalformed(t *testing.T) {
	tests := []string{
		sstHeader + `<si><t>open</si></sst>`,
		sstHeader + `<si><t>truncated`,
	}

	for _, doc := range tests {
		if _, err := ParseSharedStrings(strings.NewReader(doc)); err == nil {
			t.Errorf("Expected parse error for %q", doc)
		}
	}
}

func TestLoadSharedStringsMissingFile(t *testing.T) {
	sst, err := LoadSharedStrings(filepath.Join(t.TempDir(), "sharedStrings.xml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if sst.Len() != 0 {
		t.Errorf("Expected empty table, got %d entries", sst.Len())
	}
}

func TestLoadSharedStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sharedStrings.xml")
	doc := sstHeader + `<si><t>Name</t></si><si><t>Score</t></si></sst>`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	sst, err := LoadSharedStrings(path)
	if err != nil {
		t.Fatalf("LoadSharedStrings failed: %v", err)
	}
	got := sst.Strings()
	if len(got) != 2 || got[0] != "Name" || got[1] != "Score" {
		t.Errorf("Expected [Name Score], got %q", got)
	}
}

func TestLoadSharedStringsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sharedStrings.xml")
	if err := os.WriteFile(path, []byte(sstHeader+`<si><t>x</si>`), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	_, err := LoadSharedStrings(path)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error to name %s, got %v", path, err)
	}
}

func TestSharedStringsAtBounds(t *testing.T) {
	sst := NewSharedStrings("a", "b")
	for _, i := range []int{-1, 2, 100} {
		if _, ok := sst.At(i); ok {
			t.Errorf("At(%d) should be out of range", i)
		}
	}
}
