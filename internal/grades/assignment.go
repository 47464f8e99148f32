package grades

import "fmt"

// Assignment is a single graded piece of work. Score is a percentage and
// weight is the number of points it contributes to its category total.
// Values are fixed at construction.
type Assignment struct {
	name     string
	category Category
	score    float64
	weight   float64
}

func NewAssignment(name string, category Category, score, weight float64) (Assignment, error) {
	if !category.Valid() {
		return Assignment{}, fmt.Errorf("assignment %q: %w: %d", name, ErrUnknownCategory, uint8(category))
	}
	return Assignment{
		name:     name,
		category: category,
		score:    score,
		weight:   weight,
	}, nil
}

func (a Assignment) Name() string { return a.name }
func (a Assignment) Category() Category { return a.category }
func (a Assignment) Score() float64 { return a.score }
func (a Assignment) Weight() float64 { return a.weight }
func (a Assignment) WeightedScore() float64 { return a.score / 100 * a.weight }

// EligibleForResubmission reports whether a formative assignment scored
// below the resubmission mark. Summative work is never eligible.
func (a Assignment) EligibleForResubmission() bool {
	switch a.category {
	case Formative:
		return a.score < ResubmissionMark
	case Summative:
		return false
	}
	return false
}
