// Package clarity scores how well-specified a free-form learning goal is.
//
// The score is a sum of four independent factors, each contributing a low
// value when its signal is absent and a high value when present. The total
// lies in [MinScore, MaxScore].
package clarity

import (
	"math"
	"regexp"
	"unicode/utf8"
)

const (
	MinScore = 0.4
	MaxScore = 1.0

	// lengthThreshold is the number of characters a goal must exceed to
	// earn the high length factor.
	lengthThreshold = 30
)

type FactorCode string

const (
	FactorLength      FactorCode = "LENGTH"
	FactorSpecificity FactorCode = "SPECIFICITY"
	FactorContext     FactorCode = "CONTEXT"
	FactorTechnology  FactorCode = "TECHNOLOGY"
)

var (
	specificityPattern = regexp.MustCompile(`(?i)\b(learn|master|build|create|develop|understand)\b`)
	contextPattern     = regexp.MustCompile(`(?i)\b(with|using|through|by|in)\b`)
	technologyPattern  = regexp.MustCompile(`(?i)\b(react|javascript|typescript|node|web|frontend|backend)\b`)
)

// Factor is one contribution to a clarity score.
type Factor struct {
	Code    FactorCode
	Value   float64
	Matched bool
	Message string
}

// Report is the full breakdown of a scored goal text.
type Report struct {
	Text    string
	Factors []Factor
	Score   float64
}

// Score returns the clarity of text in [MinScore, MaxScore].
func Score(text string) float64 {
	return Evaluate(text).Score
}

// Evaluate scores text and keeps the per-factor breakdown.
func Evaluate(text string) Report {
	report := Report{Text: text}

	factors := []func(string) Factor{
		scoreLength,
		scoreSpecificity,
		scoreContext,
		scoreTechnology,
	}
	var sum float64
	for _, f := range factors {
		factor := f(text)
		sum += factor.Value
		report.Factors = append(report.Factors, factor)
	}

	report.Score = clamp(round2(sum))
	return report
}

func scoreLength(text string) Factor {
	if utf8.RuneCountInString(text) > lengthThreshold {
		return Factor{Code: FactorLength, Value: 0.3, Matched: true, Message: "Goal is described in detail"}
	}
	return Factor{Code: FactorLength, Value: 0.1, Message: "Goal is very short"}
}

func scoreSpecificity(text string) Factor {
	if specificityPattern.MatchString(text) {
		return Factor{Code: FactorSpecificity, Value: 0.3, Matched: true, Message: "States what you want to achieve"}
	}
	return Factor{Code: FactorSpecificity, Value: 0.1, Message: "No action such as learn, build or master"}
}

func scoreContext(text string) Factor {
	if contextPattern.MatchString(text) {
		return Factor{Code: FactorContext, Value: 0.2, Matched: true, Message: "Mentions how you will learn"}
	}
	return Factor{Code: FactorContext, Value: 0.1, Message: "No approach such as using or through"}
}

func scoreTechnology(text string) Factor {
	if technologyPattern.MatchString(text) {
		return Factor{Code: FactorTechnology, Value: 0.2, Matched: true, Message: "Names a technology"}
	}
	return Factor{Code: FactorTechnology, Value: 0.1, Message: "No technology named"}
}

// round2 rounds to two decimals so factor sums compare exactly
// (0.3+0.3+0.1+0.2 would otherwise be 0.8999999999999999).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v float64) float64 {
	return math.Min(v, MaxScore)
}
