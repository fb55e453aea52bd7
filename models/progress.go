package models

// SubKeyProgress is the user's best recorded result for one sub-key of an
// entity (e.g. one difficulty of a level).
type SubKeyProgress struct {
	SubKey    string `json:"sub_key"`
	HighScore int    `json:"high_score"`
	Passed    bool   `json:"passed"`
	Attempts  int    `json:"attempts"`
}

// ProgressRecord is the user's progress through one entity. There is one
// record per entity per user; it is mutated by local gameplay completion and
// by reconciliation against the server snapshot.
type ProgressRecord struct {
	EntityID  EntityID         `json:"entity_id"`
	SubKeys   []SubKeyProgress `json:"sub_keys"`
	Completed bool             `json:"completed"`
}

// SubKey returns the progress entry for the given sub-key and whether it
// exists.
func (r ProgressRecord) SubKey(key string) (SubKeyProgress, bool) {
	for _, sk := range r.SubKeys {
		if sk.SubKey == key {
			return sk, true
		}
	}
	return SubKeyProgress{}, false
}

// Merge joins two recorded results for the same sub-key without losing
// either side's best: passed is sticky, the high score and attempt count
// keep the larger value. Remaining fields keep the receiver's, so callers
// merge onto the side that wins ties.
func (p SubKeyProgress) Merge(other SubKeyProgress) SubKeyProgress {
	out := p
	out.Passed = p.Passed || other.Passed
	if other.HighScore > out.HighScore {
		out.HighScore = other.HighScore
	}
	if other.Attempts > out.Attempts {
		out.Attempts = other.Attempts
	}
	return out
}
