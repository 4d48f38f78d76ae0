package reference

import (
	"testing"

	"tavernkeep/internal/parser"
)

func TestParseSchema(t *testing.T) {
	t.Run("embedded schema loads", func(t *testing.T) {
		schema, err := ParseSchema(schemaYAML)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := schema.KindByName("SPELL"); !ok {
			t.Fatalf("expected spell kind")
		}
		if _, ok := schema.KindByName("armor"); ok {
			t.Fatalf("expected armor to be unknown")
		}
	})

	t.Run("missing kinds", func(t *testing.T) {
		if _, err := ParseSchema([]byte("version: 1\nkinds: []\n")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		if _, err := ParseSchema([]byte("version: 2\nkinds:\n  - name: spell\n")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("duplicate kind names", func(t *testing.T) {
		if _, err := ParseSchema([]byte("version: 1\nkinds:\n  - name: spell\n  - name: Spell\n")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("enum property without values", func(t *testing.T) {
		if _, err := ParseSchema([]byte("version: 1\nkinds:\n  - name: spell\n    properties:\n      - { name: school, type: enum }\n")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown property type", func(t *testing.T) {
		if _, err := ParseSchema([]byte("version: 1\nkinds:\n  - name: spell\n    properties:\n      - { name: level, type: float }\n")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := ParseSchema([]byte("kinds: [\n")); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid spell", "---\ntitle: Light\nkind: spell\nlevel: 0\nschool: Evocation\n---\n", false},
		{"missing level", "---\ntitle: Light\nkind: spell\nschool: evocation\n---\n", true},
		{"level not a number", "---\ntitle: Light\nkind: spell\nlevel: low\nschool: evocation\n---\n", true},
		{"unknown school", "---\ntitle: Light\nkind: spell\nlevel: 0\nschool: pyromancy\n---\n", true},
		{"valid weapon", "---\ntitle: Club\nkind: weapon\ncategory: Simple Melee Weapons\nproperties: [Light]\n---\n", false},
		{"properties not a list", "---\ntitle: Club\nkind: weapon\ncategory: Simple Melee Weapons\nproperties: Light\n---\n", true},
		{"unknown kind", "---\ntitle: Chain Mail\nkind: armor\n---\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.Parse([]byte(tt.content))
			if err != nil {
				t.Fatalf("parsing: %v", err)
			}
			err = defaultSchema.Validate(doc)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}
