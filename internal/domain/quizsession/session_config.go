package quizsession

// Config holds the tunable parts of a quiz session.
type Config struct {
	RandomSampleSize   int // questions drawn in random mode
	HighScoreThreshold int // percentage at or above which EventHighScore fires
}

// DefaultConfig returns ten random questions and a high score at 80%.
func DefaultConfig() Config {
	return Config{
		RandomSampleSize:   10,
		HighScoreThreshold: 80,
	}
}
