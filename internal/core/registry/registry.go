// Package registry loads the clinic department catalog from the embedded
// departments.json and resolves free text mentions to canonical names
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

//go:embed departments.json
var embedded []byte

type rawDepartment struct {
	Name     string   `json:"name"`
	Synonyms []string `json:"synonyms"`
}

type rawRegistry struct {
	Version     int             `json:"version"`
	Departments []rawDepartment `json:"departments"`
}

// Department is one catalog entry with its canonical name and synonyms
type Department struct {
	Name     string
	Synonyms []string

	// case folded forms precomputed at load
	foldedName     string
	foldedSynonyms []string
}

// Match is a resolved department mention
// Exact reports whether the canonical name itself appeared in the text
// rather than one of its synonyms
type Match struct {
	Name  string
	Exact bool
}

// Registry holds the ordered department catalog
// earlier entries win when a text mentions more than one department
type Registry struct {
	departments []Department
}

// Load parses the embedded departments.json into a Registry
func Load() (*Registry, error) {
	var rr rawRegistry
	if err := json.Unmarshal(embedded, &rr); err != nil {
		return nil, fmt.Errorf("registry: parse departments.json: %w", err)
	}
	if rr.Version != 1 {
		return nil, fmt.Errorf("registry: unsupported departments.json version %d (want 1)", rr.Version)
	}

	fold := cases.Fold()
	r := &Registry{departments: make([]Department, 0, len(rr.Departments))}
	for _, rd := range rr.Departments {
		name := strings.TrimSpace(rd.Name)
		if name == "" {
			continue
		}
		d := Department{
			Name:       name,
			Synonyms:   rd.Synonyms,
			foldedName: fold.String(name),
		}
		for _, syn := range rd.Synonyms {
			syn = strings.TrimSpace(syn)
			if syn == "" {
				continue
			}
			d.foldedSynonyms = append(d.foldedSynonyms, fold.String(syn))
		}
		r.departments = append(r.departments, d)
	}
	if len(r.departments) == 0 {
		return nil, fmt.Errorf("registry: departments.json has no departments")
	}
	return r, nil
}

// MustLoad is Load that panics on error, for wiring in main
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

// Find scans text for the first department whose name or synonym it mentions
// matching is substring based over case folded text
func (r *Registry) Find(text string) (Match, bool) {
	folded := cases.Fold().String(text)
	for _, d := range r.departments {
		if strings.Contains(folded, d.foldedName) {
			return Match{Name: d.Name, Exact: true}, true
		}
		for _, syn := range d.foldedSynonyms {
			if strings.Contains(folded, syn) {
				return Match{Name: d.Name, Exact: false}, true
			}
		}
	}
	return Match{}, false
}

// Names returns the canonical department names in catalog order
func (r *Registry) Names() []string {
	out := make([]string, len(r.departments))
	for i, d := range r.departments {
		out[i] = d.Name
	}
	return out
}

// Len returns the number of departments in the catalog
func (r *Registry) Len() int { return len(r.departments) }
