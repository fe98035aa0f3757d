package gradebook

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrGradeSyntax = errors.New("not a number")
	ErrGradeRange  = fmt.Errorf("grade must be between %g and %g", MinGrade, MaxGrade)
	ErrWeight      = errors.New("weight must be positive")
)

// Average is the weighted mean of the grades. ok is false without grades.
func (s Subject) Average() (avg float64, ok bool) {
	var sum, weights float64
	for _, g := range s.Grades {
		w := g.Weight
		if w <= 0 {
			w = 1
		}
		sum += g.Value * w
		weights += w
	}
	if weights == 0 {
		return 0, false
	}
	return sum / weights, true
}

// Points is the compensation contribution of the subject: the distance of
// the rounded average from the pass mark, with shortfalls counted twice.
func (s Subject) Points() (float64, bool) {
	avg, ok := s.Average()
	if !ok {
		return 0, false
	}
	d := RoundHalf(avg) - PassMark
	if d < 0 {
		d *= 2
	}
	return d, true
}

// RoundHalf rounds to the nearest half grade.
func RoundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

// CompensationPoints sums Points over the subjects that have grades.
func CompensationPoints(subjects []Subject) float64 {
	var total float64
	for _, s := range subjects {
		if p, ok := s.Points(); ok {
			total += p
		}
	}
	return total
}

// Average is the unweighted mean of the subject averages.
func (t Table) Average() (float64, bool) {
	var sum float64
	n := 0
	for _, s := range t.Subjects {
		if avg, ok := s.Average(); ok {
			sum += avg
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Passed reports whether the table has no negative compensation balance.
func (t Table) Passed() bool {
	return CompensationPoints(t.Subjects) >= 0
}

// ParseGrade accepts "5", "5.5" and "5,5".
func ParseGrade(text string) (float64, error) {
	v, err := parseNumber(text)
	if err != nil {
		return 0, err
	}
	if v < MinGrade || v > MaxGrade {
		return 0, ErrGradeRange
	}
	return v, nil
}

// ParseGradeEntry reads "value" or "value*weight", e.g. "4,5*2".
func ParseGradeEntry(text string) (value, weight float64, err error) {
	valuePart, weightPart, hasWeight := strings.Cut(text, "*")
	if value, err = ParseGrade(valuePart); err != nil {
		return 0, 0, err
	}
	if !hasWeight {
		return value, 1, nil
	}
	if weight, err = parseNumber(weightPart); err != nil {
		return 0, 0, err
	}
	if weight <= 0 {
		return 0, 0, ErrWeight
	}
	return value, weight, nil
}

func parseNumber(text string) (float64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", text, ErrGradeSyntax)
	}
	return v, nil
}

// FormatGrade prints whole grades without decimals and halves with one.
func FormatGrade(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPoints prints a signed point balance.
func FormatPoints(p float64) string {
	if p > 0 {
		return "+" + FormatGrade(p)
	}
	return FormatGrade(p)
}
