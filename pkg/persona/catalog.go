package persona

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var catalogFS embed.FS

// Gender selects one of the catalog's first-name lists.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Place is a public institution address from the reference catalog.
type Place struct {
	Name   string `yaml:"name" json:"name"`
	Street string `yaml:"street" json:"street"`
	City   string `yaml:"city" json:"city"`
	Zip    string `yaml:"zip" json:"zip"`
}

// Catalog is the immutable reference data personas are drawn from: first
// names by gender, last names, and per-state places, codes and area codes.
// It is safe to share one Catalog across any number of generator instances.
type Catalog struct {
	firstNames map[Gender][]string
	genders    []Gender
	lastNames  []string
	states     []string
	codes      map[string]string
	areaCodes  map[string][]string
	places     map[string][]Place
}

type catalogDoc struct {
	FirstNames map[string][]string `yaml:"first_names"`
	LastNames  []string            `yaml:"last_names"`
	States     []struct {
		Name      string   `yaml:"name"`
		Code      string   `yaml:"code"`
		AreaCodes []string `yaml:"area_codes"`
		Places    []Place  `yaml:"places"`
	} `yaml:"states"`
}

// ParseCatalog builds a Catalog from YAML data. See data/catalog.yaml for the
// expected document layout.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}

	c := &Catalog{
		firstNames: make(map[Gender][]string, len(doc.FirstNames)),
		lastNames:  doc.LastNames,
		codes:      make(map[string]string, len(doc.States)),
		areaCodes:  make(map[string][]string, len(doc.States)),
		places:     make(map[string][]Place, len(doc.States)),
	}
	for gender, names := range doc.FirstNames {
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: empty first-name list for gender %q", ErrInvalidCatalog, gender)
		}
		c.firstNames[Gender(gender)] = names
	}
	// Fixed iteration order for deterministic gender picks under a fixed seed.
	for _, gender := range []Gender{GenderMale, GenderFemale} {
		if _, ok := c.firstNames[gender]; ok {
			c.genders = append(c.genders, gender)
		}
	}
	if len(c.genders) == 0 {
		return nil, fmt.Errorf("%w: no first-name lists", ErrInvalidCatalog)
	}
	if len(c.lastNames) == 0 {
		return nil, fmt.Errorf("%w: no last names", ErrInvalidCatalog)
	}

	for _, s := range doc.States {
		switch {
		case s.Name == "":
			return nil, fmt.Errorf("%w: state with empty name", ErrInvalidCatalog)
		case len(s.Code) != 2:
			return nil, fmt.Errorf("%w: state %q has no 2-letter code", ErrInvalidCatalog, s.Name)
		case len(s.Places) == 0:
			return nil, fmt.Errorf("%w: state %q has no places", ErrInvalidCatalog, s.Name)
		case len(s.AreaCodes) == 0:
			return nil, fmt.Errorf("%w: state %q has no area codes", ErrInvalidCatalog, s.Name)
		}
		c.states = append(c.states, s.Name)
		c.codes[s.Name] = s.Code
		c.areaCodes[s.Name] = s.AreaCodes
		c.places[s.Name] = s.Places
	}
	if len(c.states) == 0 {
		return nil, fmt.Errorf("%w: no states", ErrInvalidCatalog)
	}

	return c, nil
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the catalog embedded in the binary: 50 US states
// with five public places each, state area codes, and the built-in name
// lists. The embedded data is validated at first use; a parse failure is a
// build defect and panics.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		data, err := catalogFS.ReadFile("data/catalog.yaml")
		if err != nil {
			panic(fmt.Errorf("read embedded catalog: %w", err))
		}
		defaultCatalog, err = ParseCatalog(data)
		if err != nil {
			panic(fmt.Errorf("parse embedded catalog: %w", err))
		}
	})
	return defaultCatalog
}

var stateCaser = cases.Title(language.AmericanEnglish)

// Resolve normalizes a state name ("wyoming", "NEW YORK") to its canonical
// catalog form, or returns ErrUnknownState.
func (c *Catalog) Resolve(name string) (string, error) {
	candidate := stateCaser.String(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := c.places[candidate]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
	return candidate, nil
}

// States returns the catalog's state names in document order.
func (c *Catalog) States() []string {
	out := make([]string, len(c.states))
	copy(out, c.states)
	return out
}

// StateCode returns the 2-letter code for a canonical state name.
func (c *Catalog) StateCode(state string) string { return c.codes[state] }

// Places returns the public places registered for a canonical state name.
func (c *Catalog) Places(state string) []Place {
	out := make([]Place, len(c.places[state]))
	copy(out, c.places[state])
	return out
}

// AreaCodes returns the area codes registered for a canonical state name.
func (c *Catalog) AreaCodes(state string) []string {
	out := make([]string, len(c.areaCodes[state]))
	copy(out, c.areaCodes[state])
	return out
}
