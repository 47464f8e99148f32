// Package roster loads the assignment list for a single student, either from
// a file or from the built-in sample set.
package roster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gradebook/internal/grades"
)

var ErrUnsupportedFormat = errors.New("unsupported roster format")

// Roster is the loaded input: an optional course title and the assignments
// in the order they were listed.
type Roster struct {
	Course      string
	Assignments []grades.Assignment
}

type AssignmentEntry struct {
	Name     string  `yaml:"name" json:"name"`
	Category string  `yaml:"category" json:"category"`
	Score    float64 `yaml:"score" json:"score"`
	Weight   float64 `yaml:"weight" json:"weight"`
}

type File struct {
	Course      string            `yaml:"course" json:"course"`
	Assignments []AssignmentEntry `yaml:"assignments" json:"assignments"`
}

// Sample returns the demonstration data set.
func Sample() Roster {
	entries := []AssignmentEntry{
		{Name: "Assignment 1", Category: "Formative", Score: 45, Weight: 15},
		{Name: "Assignment 2", Category: "Formative", Score: 90, Weight: 10},
		{Name: "Assignment 3", Category: "Formative", Score: 45, Weight: 10},
		{Name: "Assignment 4", Category: "Formative", Score: 80, Weight: 15},
		{Name: "Midterm", Category: "Summative", Score: 34, Weight: 20},
		{Name: "Final Exam", Category: "Summative", Score: 95, Weight: 20},
	}
	assignments, err := Build(entries)
	if err != nil {
		panic(fmt.Sprintf("roster: invalid sample set: %v", err))
	}
	return Roster{Assignments: assignments}
}

// Build converts raw entries into assignments, rejecting unknown categories.
// An empty list is valid and grades as zero totals.
func Build(entries []AssignmentEntry) ([]grades.Assignment, error) {
	out := make([]grades.Assignment, 0, len(entries))
	for i, e := range entries {
		category, err := grades.ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("assignment %d (%q): %w", i+1, e.Name, err)
		}
		a, err := grades.NewAssignment(e.Name, category, e.Score, e.Weight)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Load reads a .yaml, .yml or .json roster file.
func Load(path string) (Roster, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return Roster{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Roster{}, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return Roster{}, fmt.Errorf("roster %s: %w", path, err)
	}
	return r, nil
}

// Decode parses a roster document. JSON input is accepted as YAML and an
// empty document is a roster with no assignments.
func Decode(r io.Reader) (Roster, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Roster{}, fmt.Errorf("decode: %w", err)
	}

	assignments, err := Build(file.Assignments)
	if err != nil {
		return Roster{}, err
	}
	return Roster{Course: file.Course, Assignments: assignments}, nil
}
