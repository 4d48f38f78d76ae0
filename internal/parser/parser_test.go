package parser

import (
	"errors"
	"reflect"
	"testing"
	"testing/fstest"
)

func TestParse(t *testing.T) {
	t.Run("spell with full frontmatter", func(t *testing.T) {
		content := []byte("---\ntitle: Fireball\nkind: spell\nlevel: 3\nschool: evocation\naliases: [fire ball]\n---\n\nA bright streak flashes.\n")
		doc, err := Parse(content)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if doc.Title != "Fireball" {
			t.Fatalf("expected title, got %q", doc.Title)
		}
		if doc.Kind != "spell" {
			t.Fatalf("expected kind spell, got %q", doc.Kind)
		}
		if doc.Body != "A bright streak flashes." {
			t.Fatalf("unexpected body %q", doc.Body)
		}
		if !reflect.DeepEqual(doc.Aliases, []string{"fire ball"}) {
			t.Fatalf("unexpected aliases: %#v", doc.Aliases)
		}
		if got := doc.String("level"); got != "3" {
			t.Fatalf("expected level 3, got %q", got)
		}
		if got := doc.String("school"); got != "evocation" {
			t.Fatalf("expected school, got %q", got)
		}
	})

	t.Run("minimal frontmatter", func(t *testing.T) {
		doc, err := Parse([]byte("---\ntitle: Club\nkind: weapon\n---\n"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if doc.Aliases != nil {
			t.Fatalf("expected nil aliases, got %#v", doc.Aliases)
		}
		if doc.Body != "" {
			t.Fatalf("expected empty body, got %q", doc.Body)
		}
		if doc.String("cost") != "" {
			t.Fatalf("expected empty cost")
		}
	})

	t.Run("no frontmatter", func(t *testing.T) {
		_, err := Parse([]byte("Just text"))
		if !errors.Is(err, ErrNoFrontmatter) {
			t.Fatalf("expected ErrNoFrontmatter, got %v", err)
		}
	})

	t.Run("missing closing marker", func(t *testing.T) {
		_, err := Parse([]byte("---\ntitle: Missing\n"))
		if !errors.Is(err, ErrNoFrontmatter) {
			t.Fatalf("expected ErrNoFrontmatter, got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("---\ntitle: [\n---\n"))
		if !errors.Is(err, ErrInvalidYAML) {
			t.Fatalf("expected ErrInvalidYAML, got %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := Parse([]byte("---\nkind: spell\n---\n"))
		if !errors.Is(err, ErrMissingTitle) {
			t.Fatalf("expected ErrMissingTitle, got %v", err)
		}
	})

	t.Run("missing kind", func(t *testing.T) {
		_, err := Parse([]byte("---\ntitle: Something\n---\n"))
		if !errors.Is(err, ErrMissingKind) {
			t.Fatalf("expected ErrMissingKind, got %v", err)
		}
	})

	t.Run("bad aliases", func(t *testing.T) {
		_, err := Parse([]byte("---\ntitle: X\nkind: spell\naliases: [1, 2]\n---\n"))
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("single string list", func(t *testing.T) {
		doc, err := Parse([]byte("---\ntitle: Dagger\nkind: weapon\nproperties: Finesse\n---\n"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !reflect.DeepEqual(doc.Strings("properties"), []string{"Finesse"}) {
			t.Fatalf("unexpected properties: %#v", doc.Strings("properties"))
		}
	})
}

func TestParse_BOMTrim(t *testing.T) {
	doc, err := Parse([]byte("\ufeff---\ntitle: BOM\nkind: spell\n---\n"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Title != "BOM" {
		t.Fatalf("expected title, got %q", doc.Title)
	}
}

func TestParseDir(t *testing.T) {
	fsys := fstest.MapFS{
		"data/b.md":      {Data: []byte("---\ntitle: B\nkind: spell\n---\n")},
		"data/a.md":      {Data: []byte("---\ntitle: A\nkind: spell\n---\n")},
		"data/notes.txt": {Data: []byte("ignored")},
	}

	docs, err := ParseDir(fsys, "data")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Title != "A" || docs[0].SourceFile != "data/a.md" {
		t.Fatalf("unexpected first document: %+v", docs[0])
	}
}

func TestParseDir_BadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"data/bad.md": {Data: []byte("no frontmatter")},
	}
	_, err := ParseDir(fsys, "data")
	if !errors.Is(err, ErrNoFrontmatter) {
		t.Fatalf("expected ErrNoFrontmatter, got %v", err)
	}
}

func TestParseFile_ReadError(t *testing.T) {
	if _, err := ParseFile(fstest.MapFS{}, "missing.md"); err == nil {
		t.Fatalf("expected error")
	}
}
