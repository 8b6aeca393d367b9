package rewards

import (
	"math/rand"

	"stehauf/internal/history"
)

// Pick selects a reward uniformly at random from the catalogue. The
// immediately previous reward is excluded whenever the catalogue offers an
// alternative, so two consecutive sessions never show the same content.
func Pick(rng *rand.Rand, previous *history.Reward) history.Reward {
	if len(Catalogue) == 0 {
		return history.Reward{Kind: history.KindFact, Text: ""}
	}

	candidates := Catalogue
	if previous != nil && len(Catalogue) > 1 {
		filtered := make([]history.Reward, 0, len(Catalogue)-1)
		for _, r := range Catalogue {
			if !r.Equal(*previous) {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	return candidates[rng.Intn(len(candidates))]
}
