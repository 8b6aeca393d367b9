package history

// RewardKind discriminates the closed set of reward variants.
type RewardKind string

const (
	KindFact    RewardKind = "fact"
	KindScience RewardKind = "science"
	KindTrivia  RewardKind = "trivia"
	KindEnergy  RewardKind = "energy"
	KindQuiz    RewardKind = "quiz"
)

// Valid reports whether k is one of the known reward kinds.
func (k RewardKind) Valid() bool {
	switch k {
	case KindFact, KindScience, KindTrivia, KindEnergy, KindQuiz:
		return true
	}
	return false
}

// Reward is the content shown on session completion. Quiz rewards carry a
// question and answer; every other kind carries Text only.
type Reward struct {
	Kind     RewardKind `json:"kind"`
	Text     string     `json:"text,omitempty"`
	Question string     `json:"question,omitempty"`
	Answer   string     `json:"answer,omitempty"`
}

// Equal reports whether two rewards have identical kind and payload. Used
// by import de-duplication and by reward selection to avoid repeats.
func (r Reward) Equal(other Reward) bool {
	return r.Kind == other.Kind &&
		r.Text == other.Text &&
		r.Question == other.Question &&
		r.Answer == other.Answer
}
