package game

import "strings"

// ScoreResult is the outcome of one submitted candidate.
type ScoreResult struct {
	Candidate   string `json:"candidate"`
	Points      int    `json:"points"`
	Matched     bool   `json:"matched"`     // an undiscovered entry equalled the candidate
	TargetMatch bool   `json:"targetMatch"` // the candidate was the full target word
	Found       []int  `json:"found"`       // entry indices marked found, in award order
}

// CheckWord scores candidate against the undiscovered entries of level.
//
// An exact match earns 1 point. Only then, every other undiscovered entry
// contained in candidate is marked found as well, walking those entries from
// the highest index down and awarding 2, 3, 4... in that order. Without an
// exact match nothing changes. TargetMatch is reported regardless of points.
func CheckWord(candidate string, level *Level, entries []DiscoveryEntry) ScoreResult {
	res := ScoreResult{Candidate: candidate}
	if level != nil {
		res.TargetMatch = candidate == level.Target
	}
	if candidate == "" {
		return res
	}

	var contained []int
	for i := range entries {
		if entries[i].Found {
			continue
		}
		text := entries[i].Text
		switch {
		case text == candidate:
			entries[i].markFound()
			res.Points++
			res.Matched = true
			res.Found = append(res.Found, i)
		case strings.Contains(candidate, text):
			contained = append(contained, i)
		}
	}
	if !res.Matched {
		return res
	}

	for pos := 0; pos < len(contained); pos++ {
		i := contained[len(contained)-1-pos]
		entries[i].markFound()
		res.Points += 2 + pos
		res.Found = append(res.Found, i)
	}
	return res
}
