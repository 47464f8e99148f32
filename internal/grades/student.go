package grades

import "fmt"

// Student owns an ordered list of assignments and the totals derived from
// them. Totals are zero until CalculateScores runs.
type Student struct {
	assignments []Assignment
	totals      Totals
	resubmit    []string
	computed    bool
}

func NewStudent(assignments []Assignment) *Student {
	owned := make([]Assignment, len(assignments))
	copy(owned, assignments)
	return &Student{assignments: owned}
}

// CalculateScores recomputes the totals from the assignment list, so calling
// it more than once yields the same result.
func (s *Student) CalculateScores() []string {
	s.totals, s.resubmit = Aggregate(s.assignments)
	s.computed = true
	return s.resubmit
}

func (s *Student) Computed() bool { return s.computed }

func (s *Student) Totals() Totals { return s.totals }

func (s *Student) CheckProgression() Progression {
	return Evaluate(s.totals)
}

func (s *Student) Assignments() []Assignment {
	out := make([]Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

type Row struct {
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Score         float64  `json:"score"`
	Weight        float64  `json:"weight"`
	WeightedScore float64  `json:"weighted_score"`
}

type Result struct {
	Totals
	Progression
	ResubmissionEligible []string `json:"resubmission_eligible"`
	Rows                 []Row    `json:"rows"`
}

// Snapshot returns the computed state as a plain value. It calculates the
// scores first if that has not happened yet.
func (s *Student) Snapshot() Result {
	if !s.computed {
		s.CalculateScores()
	}
	rows := make([]Row, 0, len(s.assignments))
	for _, a := range s.assignments {
		rows = append(rows, Row{
			Name:          a.Name(),
			Category:      a.Category(),
			Score:         a.Score(),
			Weight:        a.Weight(),
			WeightedScore: a.WeightedScore(),
		})
	}
	resubmit := make([]string, len(s.resubmit))
	copy(resubmit, s.resubmit)
	return Result{
		Totals:               s.totals,
		Progression:          s.CheckProgression(),
		ResubmissionEligible: resubmit,
		Rows:                 rows,
	}
}

// Grade runs the full pipeline for one student. Nothing is computed when
// the weight gate fails.
func Grade(assignments []Assignment) (Result, error) {
	if err := CheckWeights(assignments); err != nil {
		return Result{}, fmt.Errorf("check weights: %w", err)
	}
	student := NewStudent(assignments)
	student.CalculateScores()
	return student.Snapshot(), nil
}
