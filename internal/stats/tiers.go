package stats

import "amongus-stats-service/internal/domain"

// tierWeights maps tier labels to their score on the consensus scale.
var tierWeights = map[string]float64{
	"S": 5,
	"A": 4,
	"B": 3,
	"C": 2,
	"D": 1,
	"F": 0,
}

// AggregateTiers folds every submission's rankings into one consensus tier
// per player via a weighted average. Unrecognized labels are skipped without
// counting; players ranked by nobody are absent from the result, which is
// distinct from tier F.
func AggregateTiers(submissions []domain.TierSubmission) map[string]string {
	type accumulator struct {
		total float64
		count int
	}
	scores := make(map[string]*accumulator)

	for _, sub := range submissions {
		for player, tier := range sub.Rankings {
			weight, ok := tierWeights[tier]
			if !ok {
				continue
			}
			acc := scores[player]
			if acc == nil {
				acc = &accumulator{}
				scores[player] = acc
			}
			acc.total += weight
			acc.count++
		}
	}

	consensus := make(map[string]string, len(scores))
	for player, acc := range scores {
		consensus[player] = tierLabel(acc.total / float64(acc.count))
	}
	return consensus
}

// tierLabel maps an average score to a label, inclusive at each boundary.
func tierLabel(avg float64) string {
	switch {
	case avg >= 4.5:
		return "S"
	case avg >= 3.5:
		return "A"
	case avg >= 2.5:
		return "B"
	case avg >= 1.5:
		return "C"
	case avg >= 0.5:
		return "D"
	default:
		return "F"
	}
}
