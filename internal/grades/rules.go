package grades

import (
	"errors"
	"fmt"
)

const (
	FormativePassMark = 30.0
	SummativePassMark = 20.0

	FormativeWeightLimit = 60.0
	SummativeWeightLimit = 40.0

	ResubmissionMark = 50.0
)

var ErrWeightLimitExceeded = errors.New("weight limit exceeded")

type WeightLimitError struct {
	Category Category
	Total    float64
	Limit    float64
}

func (e *WeightLimitError) Error() string {
	return fmt.Sprintf("%s weights total %.2f, limit is %.2f", e.Category, e.Total, e.Limit)
}

func (e *WeightLimitError) Unwrap() error { return ErrWeightLimitExceeded }

// CheckWeights is the load-time gate: the formative weights must not sum
// past 60 and the summative weights past 40. Limits are inclusive.
func CheckWeights(assignments []Assignment) error {
	var formative, summative float64
	for _, a := range assignments {
		switch a.Category() {
		case Formative:
			formative += a.Weight()
		case Summative:
			summative += a.Weight()
		}
	}

	var errs []error
	if formative > FormativeWeightLimit {
		errs = append(errs, &WeightLimitError{Category: Formative, Total: formative, Limit: FormativeWeightLimit})
	}
	if summative > SummativeWeightLimit {
		errs = append(errs, &WeightLimitError{Category: Summative, Total: summative, Limit: SummativeWeightLimit})
	}
	return errors.Join(errs...)
}

type Totals struct {
	Formative float64 `json:"formative_total"`
	Summative float64 `json:"summative_total"`
}

type Progression struct {
	Passed          bool `json:"passed"`
	FormativePassed bool `json:"formative_passed"`
	SummativePassed bool `json:"summative_passed"`
}

// Aggregate sums weighted scores per category and collects the names of
// formative assignments eligible for resubmission, in input order.
func Aggregate(assignments []Assignment) (Totals, []string) {
	var totals Totals
	resubmit := []string{}
	for _, a := range assignments {
		switch a.Category() {
		case Formative:
			totals.Formative += a.WeightedScore()
		case Summative:
			totals.Summative += a.WeightedScore()
		}
		if a.EligibleForResubmission() {
			resubmit = append(resubmit, a.Name())
		}
	}
	return totals, resubmit
}

func Evaluate(t Totals) Progression {
	p := Progression{
		FormativePassed: t.Formative >= FormativePassMark,
		SummativePassed: t.Summative >= SummativePassMark,
	}
	p.Passed = p.FormativePassed && p.SummativePassed
	return p
}
