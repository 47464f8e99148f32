// Package transcript renders a graded result for people (text) or programs
// (JSON). It does no computation of its own.
package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gradebook/internal/grades"
)

const DefaultCourse = "Linux and IT Tools"

const GateFailureMessage = "Error: Formative or summative weights exceed the allowed limit."

type Options struct {
	Course string
	Order  Order
}

func (o Options) course() string {
	if strings.TrimSpace(o.Course) == "" {
		return DefaultCourse
	}
	return o.Course
}

func WriteResubmissions(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "Assignment '%s' is eligible for resubmission.\n", name); err != nil {
			return err
		}
	}
	return nil
}

func ProgressionMessages(p grades.Progression) []string {
	if p.Passed {
		return []string{"Congratulations! You have passed the course and progressed to the next level."}
	}
	msgs := []string{"Unfortunately, you have not met the minimum requirements."}
	if !p.FormativePassed {
		msgs = append(msgs, fmt.Sprintf("Your formative score is below %g%%.", grades.FormativePassMark))
	}
	if !p.SummativePassed {
		msgs = append(msgs, fmt.Sprintf("Your summative score is below %g%%.", grades.SummativePassMark))
	}
	return msgs
}

func WriteProgression(w io.Writer, p grades.Progression) error {
	for _, msg := range ProgressionMessages(p) {
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable prints the transcript table followed by the category totals.
func WriteTable(w io.Writer, res grades.Result, opts Options) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Scores in %s\n", opts.course())
	b.WriteString("Assignment\tType\tScore(%)\tWeight(%)\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, row := range Sorted(res.Rows, opts.Order) {
		fmt.Fprintf(&b, "%s\t%s\t%.2f\t%.2f\n", row.Name, row.Category, row.Score, row.Weight)
	}
	fmt.Fprintf(&b, "\nFormative Total: %.2f%%\n", res.Formative)
	fmt.Fprintf(&b, "Summative Total: %.2f%%\n", res.Summative)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteReport writes the full console report: resubmission notices, the
// progression decision and the transcript table.
func WriteReport(w io.Writer, res grades.Result, opts Options) error {
	if err := WriteResubmissions(w, res.ResubmissionEligible); err != nil {
		return fmt.Errorf("write resubmissions: %w", err)
	}
	if err := WriteProgression(w, res.Progression); err != nil {
		return fmt.Errorf("write progression: %w", err)
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := WriteTable(w, res, opts); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// Document is the structured form of a report.
type Document struct {
	Course string `json:"course"`
	grades.Result
}

func NewDocument(res grades.Result, opts Options) Document {
	res.Rows = Sorted(res.Rows, opts.Order)
	return Document{Course: opts.course(), Result: res}
}

func WriteJSON(w io.Writer, res grades.Result, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(res, opts)); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func Write(w io.Writer, format Format, res grades.Result, opts Options) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, res, opts)
	case FormatText:
		return WriteReport(w, res, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
