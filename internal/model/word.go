package model

// Difficulty buckets words for selection. The empty value means the word
// has no difficulty assigned.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid reports whether d is a known difficulty level
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// WordRecord is one entry of the word catalog. Records are created at load
// time and never mutated.
type WordRecord struct {
	Word            string     `json:"word"`
	Description     string     `json:"description"`
	Hints           []string   `json:"hints,omitempty"` // 0..3, in reveal order
	ExampleSentence string     `json:"sentence"`
	Difficulty      Difficulty `json:"difficulty,omitempty"`
}

// IsZero reports whether the record is the empty record (word absent from
// the catalog)
func (r WordRecord) IsZero() bool {
	return r.Word == ""
}
