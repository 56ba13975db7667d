package domain

import (
	"fmt"
	"strings"
)

type TimeUnit string

const (
	UnitDays   TimeUnit = "days"
	UnitWeeks  TimeUnit = "weeks"
	UnitMonths TimeUnit = "months"
)

// ValidTimeUnits is the canonical set of accepted timeline units.
var ValidTimeUnits = map[TimeUnit]bool{
	UnitDays: true, UnitWeeks: true, UnitMonths: true,
}

type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// ExperienceLevels lists the levels in their rough ordinal order.
var ExperienceLevels = []ExperienceLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Valid reports whether l is one of the recognized levels.
func (l ExperienceLevel) Valid() bool {
	return l.Rank() >= 0
}

// Rank returns the ordinal position of the level, or -1 if unrecognized.
func (l ExperienceLevel) Rank() int {
	for i, lvl := range ExperienceLevels {
		if lvl == l {
			return i
		}
	}
	return -1
}

// ParseExperienceLevel parses a level name case-insensitively.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	lvl := ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
	if !lvl.Valid() {
		return "", &InvalidInputError{
			Field:  "experience_level",
			Reason: fmt.Sprintf("%q must be one of beginner, intermediate, advanced", s),
		}
	}
	return lvl, nil
}

type TipKind string

const (
	TipKindTip   TipKind = "tip"
	TipKindFact  TipKind = "fact"
	TipKindQuote TipKind = "quote"
)

// TemplateKind distinguishes goal templates from standalone project listings
// in search results.
type TemplateKind string

const (
	KindTemplate TemplateKind = "template"
	KindProject  TemplateKind = "project"
)
