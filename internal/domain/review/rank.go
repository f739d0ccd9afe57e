package review

// Tier is the feedback category for a final percentage.
type Tier struct {
	Key     string
	Icon    string
	Title   string
	Message string
	MinPct  int // inclusive lower bound
}

// DefaultTiers is ordered from the highest bound down; the first tier whose
// MinPct the percentage reaches wins.
var DefaultTiers = []Tier{
	{Key: "master", Icon: "👑", Title: "Information Master", MinPct: 100,
		Message: "Perfect! You know this material inside out. Go into the exam with confidence!"},
	{Key: "expert", Icon: "🌟", Title: "Expert", MinPct: 80,
		Message: "Excellent result, you are close to a perfect score. Review the questions you missed and you are ready!"},
	{Key: "challenger", Icon: "💪", Title: "Challenger", MinPct: 60,
		Message: "Good progress! Check the questions you missed in the review list below."},
	{Key: "rookie", Icon: "📖", Title: "Rookie", MinPct: 40,
		Message: "Plenty of room to grow! Go through the review list and the textbook."},
	{Key: "starting_line", Icon: "🔥", Title: "Starting Line", MinPct: 0,
		Message: "One step at a time! Use the review list to find your weak spots and reread the textbook."},
}

// RankFor returns the tier for pct using DefaultTiers.
func RankFor(pct int) Tier {
	return rankIn(DefaultTiers, pct)
}

func rankIn(tiers []Tier, pct int) Tier {
	if len(tiers) == 0 {
		tiers = DefaultTiers
	}
	for _, t := range tiers {
		if pct >= t.MinPct {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
