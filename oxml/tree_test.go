package oxml

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<d:doc xmlns:d="urn:test:tree" title="Hello">
  <d:body>
    <d:p>first</d:p>
    <d:p>second</d:p>
  </d:body>
</d:doc>`)

	tree, err := Parse("test/part.xml", data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if tree.PartName != "test/part.xml" {
		t.Errorf("PartName = %q, want %q", tree.PartName, "test/part.xml")
	}
	if tree.Root.Local != "doc" || tree.Root.Space != "urn:test:tree" {
		t.Errorf("root = {%s}%s, want {urn:test:tree}doc", tree.Root.Space, tree.Root.Local)
	}

	if v, ok := tree.Root.Attr("", "title"); !ok || v != "Hello" {
		t.Errorf("title attr = %q, %v", v, ok)
	}

	if len(tree.Root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(tree.Root.Children))
	}
	body := tree.Root.Children[0]
	if len(body.Children) != 2 {
		t.Fatalf("body children = %d, want 2", len(body.Children))
	}
	if body.Children[0].Text != "first" || body.Children[1].Text != "second" {
		t.Errorf("paragraph text = %q, %q", body.Children[0].Text, body.Children[1].Text)
	}
}

func TestParsePrefixIndependence(t *testing.T) {
	// The same document spelled with two different prefixes must produce
	// identical namespace-resolved trees.
	a := `<w:document xmlns:w="urn:test:wp"><w:body/></w:document>`
	b := `<x:document xmlns:x="urn:test:wp"><x:body/></x:document>`

	treeA, err := Parse("a.xml", []byte(a))
	if err != nil {
		t.Fatalf("Parse a: %v", err)
	}
	treeB, err := Parse("b.xml", []byte(b))
	if err != nil {
		t.Fatalf("Parse b: %v", err)
	}

	if treeA.Root.Space != treeB.Root.Space || treeA.Root.Local != treeB.Root.Local {
		t.Errorf("roots differ: {%s}%s vs {%s}%s",
			treeA.Root.Space, treeA.Root.Local, treeB.Root.Space, treeB.Root.Local)
	}
	if treeA.Root.Children[0].Space != treeB.Root.Children[0].Space {
		t.Errorf("child namespaces differ")
	}
}

func TestParseBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<root attr="v"/>`)...)
	tree, err := Parse("bom.xml", data)
	if err != nil {
		t.Fatalf("Parse with BOM failed: %v", err)
	}
	if tree.Root.Local != "root" {
		t.Errorf("root = %q, want root", tree.Root.Local)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"truncated", "<root><child>"},
		{"not xml", "this is not xml at all {{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse("bad.xml", []byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestElementPaths(t *testing.T) {
	data := `<doc><body><p>a</p><p>b</p><tbl/></body></doc>`
	tree, err := Parse("paths.xml", []byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	body := tree.Root.Children[0]
	if body.Path != "/doc/body" {
		t.Errorf("body path = %q", body.Path)
	}
	if got := body.Children[1].Path; !strings.Contains(got, "p[2]") {
		t.Errorf("second paragraph path = %q, want a p[2] component", got)
	}
}

func TestParseCharData(t *testing.T) {
	data := `<p>before<b>bold</b>after</p>`
	tree, err := Parse("text.xml", []byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// Direct character data only; nested element text stays with the child.
	if tree.Root.Text != "beforeafter" {
		t.Errorf("root text = %q, want %q", tree.Root.Text, "beforeafter")
	}
	if tree.Root.Children[0].Text != "bold" {
		t.Errorf("child text = %q, want %q", tree.Root.Children[0].Text, "bold")
	}
}
