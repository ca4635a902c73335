package rules

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:embed data/ruleset.yaml
var defaultRuleset []byte

// Skill is a named skill and the attribute that governs its modifier.
type Skill struct {
	Name      string `yaml:"name"`
	Attribute string `yaml:"attribute"`
}

// ClassDefinition lists the minimum attribute values a class requires.
type ClassDefinition struct {
	Name     string         `yaml:"name"`
	Minimums map[string]int `yaml:"minimums"`
}

// SkillPointFormula derives the skill budget: Base + PerModifier * modifier(Attribute).
type SkillPointFormula struct {
	Attribute   string `yaml:"attribute"`
	Base        int    `yaml:"base"`
	PerModifier int    `yaml:"per_modifier"`
}

// Tables is the static rules data. It is read-only after loading.
type Tables struct {
	AttributePointCap     int               `yaml:"attribute_point_cap"`
	DefaultAttributeValue int               `yaml:"default_attribute_value"`
	CheckDie              int               `yaml:"check_die"`
	Attributes            []string          `yaml:"attributes"`
	SkillPoints           SkillPointFormula `yaml:"skill_points"`
	Skills                []Skill           `yaml:"skills"`
	Classes               []ClassDefinition `yaml:"classes"`

	skillIndex map[string]Skill
	classIndex map[string]ClassDefinition
	attrIndex  map[string]struct{}
}

// DefaultTables parses the embedded ruleset.
func DefaultTables() (*Tables, error) {
	return ParseTables(defaultRuleset)
}

// LoadTables reads a ruleset YAML file from disk.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied ruleset path
	if err != nil {
		return nil, fmt.Errorf("reading ruleset %s: %w", path, err)
	}
	return ParseTables(data)
}

// requiredKeys holds the settings whose zero value is valid YAML but never a
// sensible ruleset, so they must be written out.
type requiredKeys struct {
	DefaultAttributeValue *int `yaml:"default_attribute_value"`
	SkillPoints           struct {
		Base        *int `yaml:"base"`
		PerModifier *int `yaml:"per_modifier"`
	} `yaml:"skill_points"`
}

func (k requiredKeys) validate(vb *errors.ValidationBuilder) {
	if k.DefaultAttributeValue == nil {
		vb.RequiredField("default_attribute_value")
	}
	if k.SkillPoints.Base == nil {
		vb.RequiredField("skill_points.base")
	}
	if k.SkillPoints.PerModifier == nil {
		vb.RequiredField("skill_points.per_modifier")
	}
}

// ParseTables decodes and validates a ruleset document.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing ruleset: %w", err)
	}
	var keys requiredKeys
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("parsing ruleset: %w", err)
	}
	vb := errors.NewValidationBuilder()
	keys.validate(vb)
	t.check(vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	t.index()
	return &t, nil
}

// Validate checks the tables are internally consistent.
func (t *Tables) Validate() error {
	vb := errors.NewValidationBuilder()
	t.check(vb)
	return vb.Build()
}

func (t *Tables) check(vb *errors.ValidationBuilder) {
	if t.AttributePointCap < 1 {
		vb.Field("attribute_point_cap", "must be positive")
	}
	if t.CheckDie < 1 {
		vb.Field("check_die", "must be positive")
	}
	if len(t.Attributes) == 0 {
		vb.RequiredField("attributes")
	}

	attrs := make(map[string]struct{}, len(t.Attributes))
	for _, a := range t.Attributes {
		if _, dup := attrs[a]; dup {
			vb.Fieldf("attributes", "duplicate attribute %q", a)
		}
		attrs[a] = struct{}{}
	}
	if t.DefaultAttributeValue*len(t.Attributes) > t.AttributePointCap {
		vb.Fieldf("default_attribute_value", "fresh characters would exceed the %d point cap", t.AttributePointCap)
	}

	if _, ok := attrs[t.SkillPoints.Attribute]; !ok {
		vb.Fieldf("skill_points.attribute", "unknown attribute %q", t.SkillPoints.Attribute)
	}

	if len(t.Skills) == 0 {
		vb.RequiredField("skills")
	}
	skills := make(map[string]struct{}, len(t.Skills))
	for _, s := range t.Skills {
		if s.Name == "" {
			vb.Field("skills", "name is required")
			continue
		}
		if _, dup := skills[s.Name]; dup {
			vb.Fieldf("skills", "duplicate skill %q", s.Name)
		}
		skills[s.Name] = struct{}{}
		if _, ok := attrs[s.Attribute]; !ok {
			vb.Fieldf("skills", "skill %q has unknown attribute %q", s.Name, s.Attribute)
		}
	}

	classes := make(map[string]struct{}, len(t.Classes))
	for _, c := range t.Classes {
		if c.Name == "" {
			vb.Field("classes", "name is required")
			continue
		}
		if _, dup := classes[c.Name]; dup {
			vb.Fieldf("classes", "duplicate class %q", c.Name)
		}
		classes[c.Name] = struct{}{}
		for attr := range c.Minimums {
			if _, ok := attrs[attr]; !ok {
				vb.Fieldf("classes", "class %q has unknown attribute %q", c.Name, attr)
			}
		}
	}

}

func (t *Tables) index() {
	t.attrIndex = make(map[string]struct{}, len(t.Attributes))
	for _, a := range t.Attributes {
		t.attrIndex[a] = struct{}{}
	}
	t.skillIndex = make(map[string]Skill, len(t.Skills))
	for _, s := range t.Skills {
		t.skillIndex[s.Name] = s
	}
	t.classIndex = make(map[string]ClassDefinition, len(t.Classes))
	for _, c := range t.Classes {
		t.classIndex[c.Name] = c
	}
}

// HasAttribute reports whether name is a known attribute.
func (t *Tables) HasAttribute(name string) bool {
	_, ok := t.attrIndex[name]
	return ok
}

// Skill looks up a skill by name.
func (t *Tables) Skill(name string) (Skill, bool) {
	s, ok := t.skillIndex[name]
	return s, ok
}

// Class looks up a class definition by name.
func (t *Tables) Class(name string) (ClassDefinition, bool) {
	c, ok := t.classIndex[name]
	return c, ok
}

// SkillNames returns skill names in table order.
func (t *Tables) SkillNames() []string {
	names := make([]string, len(t.Skills))
	for i, s := range t.Skills {
		names[i] = s.Name
	}
	return names
}

// ClassNames returns class names in table order.
func (t *Tables) ClassNames() []string {
	names := make([]string, len(t.Classes))
	for i, c := range t.Classes {
		names[i] = c.Name
	}
	return names
}

// DefaultCheck is the initial check selection: the first skill at dc 1.
func (t *Tables) DefaultCheck() entities.CheckRequest {
	req := entities.CheckRequest{DC: 1}
	if len(t.Skills) > 0 {
		req.Skill = t.Skills[0].Name
	}
	return req
}
