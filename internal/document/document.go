// Package document defines the YAML wire shapes for roster and result files
// and the codec for reading and writing them.
//
// The record types here are deliberately decoupled from the domain entities in
// [internal/roster] and [internal/assign]: documents are untrusted input, so
// they are decoded into plain records first and translated at the boundary.
// Decoding is permissive: missing keys yield zero values and are not treated
// as errors. Use [Document.Lint] for diagnostics on suspicious input.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maxchv/crewplan/internal/errors"
)

// PersonRecord is the input shape of a single roster entry.
type PersonRecord struct {
	Name   string   `yaml:"name"`
	Salary float64  `yaml:"salary"`
	Skills []string `yaml:"skills"`
}

// TaskRecord is the input shape of a single task entry.
type TaskRecord struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

// Document is the top-level input file: a task list and a roster.
// The key spelling ("Tasks", "Peoples") is part of the established file
// format and is preserved verbatim.
type Document struct {
	Tasks   []TaskRecord   `yaml:"Tasks"`
	Peoples []PersonRecord `yaml:"Peoples"`
}

// TeamResult is the output shape of a single assembled team: member names in
// the team's canonical (name-sorted) order, and the summed salary.
type TeamResult struct {
	Peoples []string `yaml:"peoples"`
	Price   float64  `yaml:"price"`
}

// TaskResult is the output shape of a task with its ranked teams.
type TaskResult struct {
	Name  string       `yaml:"name"`
	Teams []TeamResult `yaml:"teams"`
}

// ResultDocument is the top-level output file.
type ResultDocument struct {
	Tasks []TaskResult `yaml:"Tasks"`
}

// Load reads and decodes an input document from path. A missing file is
// reported as [errors.ErrInputNotFound].
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errors.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to read input document: %w", err)
	}
	return Parse(data)
}

// Parse decodes an input document from raw YAML. Decode failures are reported
// as [errors.ErrMalformedDocument].
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedDocument, err)
	}
	return &doc, nil
}

// Save encodes a result document and writes it to path.
func Save(path string, result *ResultDocument) error {
	data, err := Marshal(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write result document: %w", err)
	}
	return nil
}

// Marshal encodes a result document as YAML.
func Marshal(result *ResultDocument) ([]byte, error) {
	data, err := yaml.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result document: %w", err)
	}
	return data, nil
}

// ParseResult decodes a result document from raw YAML. Used by the result
// viewer and by round-trip tests.
func ParseResult(data []byte) (*ResultDocument, error) {
	var result ResultDocument
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedDocument, err)
	}
	return &result, nil
}

// LoadResult reads and decodes a result document from path.
func LoadResult(path string) (*ResultDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errors.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to read result document: %w", err)
	}
	return ParseResult(data)
}

// Diagnostic describes a suspicious-but-tolerated condition found in an
// input document.
type Diagnostic struct {
	Field   string // e.g. "Peoples[2].salary"
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Field, d.Message)
}

// Lint inspects the document for conditions that usually indicate a mistake:
// unnamed entries, empty skill lists, negative salaries, duplicate person
// names. None of these abort processing by default, the solver tolerates
// them, but strict mode treats any diagnostic as fatal.
func (doc *Document) Lint() []Diagnostic {
	var diags []Diagnostic

	seen := make(map[string]int)
	for i, p := range doc.Peoples {
		field := fmt.Sprintf("Peoples[%d]", i)
		if p.Name == "" {
			diags = append(diags, Diagnostic{Field: field + ".name", Message: "person has no name"})
		}
		if p.Salary < 0 {
			diags = append(diags, Diagnostic{Field: field + ".salary", Message: "salary is negative"})
		}
		if len(p.Skills) == 0 {
			diags = append(diags, Diagnostic{Field: field + ".skills", Message: "person has no skills"})
		}
		if p.Name != "" {
			if prev, ok := seen[p.Name]; ok {
				diags = append(diags, Diagnostic{
					Field:   field + ".name",
					Message: fmt.Sprintf("duplicate person name %q (first seen at Peoples[%d])", p.Name, prev),
				})
			} else {
				seen[p.Name] = i
			}
		}
	}

	for i, t := range doc.Tasks {
		field := fmt.Sprintf("Tasks[%d]", i)
		if t.Name == "" {
			diags = append(diags, Diagnostic{Field: field + ".name", Message: "task has no name"})
		}
		if len(t.Skills) == 0 {
			diags = append(diags, Diagnostic{Field: field + ".skills", Message: "task requires no skills; it will produce no teams"})
		}
	}

	return diags
}
