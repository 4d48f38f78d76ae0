package reference

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tavernkeep/internal/parser"
)

//go:embed schema.yaml
var schemaYAML []byte

// Schema describes the frontmatter each kind of entry carries.
type Schema struct {
	Version int          `yaml:"version"`
	Kinds   []KindSchema `yaml:"kinds"`

	kindIndex map[string]*KindSchema
}

type KindSchema struct {
	Name       string     `yaml:"name"`
	Properties []Property `yaml:"properties"`
}

type Property struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"` // string, int, list or enum
	Values   []string `yaml:"values"`
	Required bool     `yaml:"required"`
}

var propertyTypes = map[string]bool{"string": true, "int": true, "list": true, "enum": true}

func ParseSchema(data []byte) (*Schema, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	if err := validateSchema(&schema); err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	schema.kindIndex = make(map[string]*KindSchema)
	for i := range schema.Kinds {
		kind := &schema.Kinds[i]
		schema.kindIndex[strings.ToLower(kind.Name)] = kind
	}

	return &schema, nil
}

func validateSchema(s *Schema) error {
	if s.Version != 1 {
		return fmt.Errorf("unsupported version: %d", s.Version)
	}
	if len(s.Kinds) == 0 {
		return fmt.Errorf("at least one kind is required")
	}

	kindNames := make(map[string]struct{})
	for i, kind := range s.Kinds {
		if strings.TrimSpace(kind.Name) == "" {
			return fmt.Errorf("kind %d name is required", i)
		}
		key := strings.ToLower(kind.Name)
		if _, exists := kindNames[key]; exists {
			return fmt.Errorf("duplicate kind name: %s", kind.Name)
		}
		kindNames[key] = struct{}{}

		propNames := make(map[string]struct{})
		for _, prop := range kind.Properties {
			name := strings.ToLower(strings.TrimSpace(prop.Name))
			if name == "" {
				return fmt.Errorf("kind %s has property with empty name", kind.Name)
			}
			if _, exists := propNames[name]; exists {
				return fmt.Errorf("kind %s has duplicate property: %s", kind.Name, prop.Name)
			}
			propNames[name] = struct{}{}
			if !propertyTypes[strings.ToLower(prop.Type)] {
				return fmt.Errorf("kind %s property %s has unknown type %q", kind.Name, prop.Name, prop.Type)
			}
			if strings.EqualFold(prop.Type, "enum") && len(prop.Values) == 0 {
				return fmt.Errorf("kind %s property %s enum has no values", kind.Name, prop.Name)
			}
		}
	}

	return nil
}

func (s *Schema) KindByName(name string) (*KindSchema, bool) {
	if s == nil {
		return nil, false
	}
	kind, ok := s.kindIndex[strings.ToLower(name)]
	return kind, ok
}

// Validate checks doc's frontmatter against the properties of its kind.
func (s *Schema) Validate(doc *parser.Document) error {
	kind, ok := s.KindByName(doc.Kind)
	if !ok {
		return fmt.Errorf("%s: unknown kind %q", doc.SourceFile, doc.Kind)
	}

	for _, prop := range kind.Properties {
		value, present := doc.Frontmatter[prop.Name]
		if !present || value == nil {
			if prop.Required {
				return fmt.Errorf("%s: %s is required", doc.SourceFile, prop.Name)
			}
			continue
		}

		switch strings.ToLower(prop.Type) {
		case "int":
			if _, err := strconv.Atoi(doc.String(prop.Name)); err != nil {
				return fmt.Errorf("%s: %s must be a whole number, got %q", doc.SourceFile, prop.Name, doc.String(prop.Name))
			}
		case "enum":
			if !containsFold(prop.Values, doc.String(prop.Name)) {
				return fmt.Errorf("%s: %s must be one of %s, got %q",
					doc.SourceFile, prop.Name, strings.Join(prop.Values, ", "), doc.String(prop.Name))
			}
		case "list":
			if _, isList := value.([]any); !isList {
				return fmt.Errorf("%s: %s must be a list", doc.SourceFile, prop.Name)
			}
		default:
			if prop.Required && strings.TrimSpace(doc.String(prop.Name)) == "" {
				return fmt.Errorf("%s: %s is required", doc.SourceFile, prop.Name)
			}
		}
	}
	return nil
}

var defaultSchema = func() *Schema {
	schema, err := ParseSchema(schemaYAML)
	if err != nil {
		panic(err)
	}
	return schema
}()

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
