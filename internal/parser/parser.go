// Package parser reads markdown documents that carry a YAML frontmatter
// block, as used by the embedded reference entries.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

type Document struct {
	Frontmatter map[string]any
	Title       string
	Kind        string
	Aliases     []string
	Body        string
	SourceFile  string
}

var (
	ErrNoFrontmatter = errors.New("no frontmatter found")
	ErrInvalidYAML   = errors.New("invalid YAML in frontmatter")
	ErrMissingTitle  = errors.New("frontmatter missing required 'title' field")
	ErrMissingKind   = errors.New("frontmatter missing required 'kind' field")
)

func ParseFile(fsys fs.FS, path string) (*Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.SourceFile = path
	return doc, nil
}

// ParseDir parses every .md file directly under dir, in lexical order.
func ParseDir(fsys fs.FS, dir string) ([]*Document, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var docs []*Document
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		doc, err := ParseFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func Parse(content []byte) (*Document, error) {
	trimmed := bytes.TrimLeft(content, "\ufeff\n\r\t ")
	if !bytes.HasPrefix(trimmed, []byte("---\n")) {
		return nil, ErrNoFrontmatter
	}

	rest := trimmed[len("---\n"):]
	end := bytes.Index(rest, []byte("---\n"))
	if end == -1 {
		return nil, ErrNoFrontmatter
	}

	var frontmatter map[string]any
	if err := yaml.Unmarshal(rest[:end], &frontmatter); err != nil {
		return nil, ErrInvalidYAML
	}

	title, ok := frontmatter["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	kind, ok := frontmatter["kind"].(string)
	if !ok || strings.TrimSpace(kind) == "" {
		return nil, ErrMissingKind
	}

	aliases, err := stringList(frontmatter["aliases"])
	if err != nil {
		return nil, fmt.Errorf("aliases: %w", err)
	}

	return &Document{
		Frontmatter: frontmatter,
		Title:       title,
		Kind:        kind,
		Aliases:     aliases,
		Body:        strings.TrimSpace(string(rest[end+len("---\n"):])),
	}, nil
}

// String returns a scalar frontmatter value as text, or "" when absent.
func (d *Document) String(key string) string {
	switch v := d.Frontmatter[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Strings returns a frontmatter value that may be a single string or a list.
func (d *Document) Strings(key string) []string {
	list, err := stringList(d.Frontmatter[key])
	if err != nil {
		return nil
	}
	return list
}

func stringList(value any) ([]string, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("must be strings")
			}
			if strings.TrimSpace(s) == "" {
				continue
			}
			out = append(out, s)
		}
		if len(out) == 0 {
			return nil, nil
		}
		return out, nil
	default:
		return nil, fmt.Errorf("must be string or list of strings")
	}
}
