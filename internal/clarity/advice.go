package clarity

const (
	// WarnBelow is the score under which improvement tips are shown.
	WarnBelow = 0.6
	// BlockBelow is the score under which a goal cannot be submitted.
	BlockBelow = 0.4
	// goodFrom is where the clarity bar turns from fair to good.
	goodFrom = 0.7
)

// Tips are shown to the learner whenever a goal scores below WarnBelow.
var Tips = []string{
	"Be specific about what you want to learn",
	"Include the technology or skills you want to master",
	"Mention how you plan to learn (e.g., by building projects)",
	"Consider the end result you're aiming for",
}

// Advice is the low-clarity warning state for a score. It is advisory:
// only Blocked prevents submission.
type Advice struct {
	Score   float64
	Warn    bool
	Blocked bool
	Tips    []string
}

// Advise derives the advisory state for score.
func Advise(score float64) Advice {
	a := Advice{
		Score:   score,
		Warn:    score < WarnBelow,
		Blocked: score < BlockBelow,
	}
	if a.Warn {
		a.Tips = Tips
	}
	return a
}

type Level string

const (
	LevelLow  Level = "low"
	LevelFair Level = "fair"
	LevelGood Level = "good"
)

// LevelOf buckets a score for display.
func LevelOf(score float64) Level {
	switch {
	case score < BlockBelow:
		return LevelLow
	case score < goodFrom:
		return LevelFair
	default:
		return LevelGood
	}
}

// Percent returns the score as a whole percentage, as shown in "90% Clear".
func Percent(score float64) int {
	return int(score*100 + 0.5)
}
