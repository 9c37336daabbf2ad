package retrieval

// Diversify selects between minSources and maxSources from the ranked list,
// capping the share any single intent may take. Sources are considered in
// rank order; when the intent cap would starve the selection below the
// minimum, a second pass fills the remainder ignoring caps.
func Diversify(ranked []ScoredSource, minSources, maxSources int) []ScoredSource {
	if maxSources <= 0 || len(ranked) == 0 {
		return nil
	}
	if minSources > maxSources {
		minSources = maxSources
	}

	intents := make(map[string]bool)
	for _, s := range ranked {
		intents[s.Source.Intent] = true
	}
	// Per-intent cap: an even split of the budget, at least 2.
	intentCap := (maxSources + len(intents) - 1) / len(intents)
	if intentCap < 2 {
		intentCap = 2
	}

	selected := make([]ScoredSource, 0, maxSources)
	taken := make(map[int]bool)
	perIntent := make(map[string]int)

	for i, s := range ranked {
		if len(selected) >= maxSources {
			break
		}
		if perIntent[s.Source.Intent] >= intentCap {
			continue
		}
		selected = append(selected, s)
		taken[i] = true
		perIntent[s.Source.Intent]++
	}

	// Cap starved the selection; top up with the best remaining.
	for i, s := range ranked {
		if len(selected) >= minSources {
			break
		}
		if taken[i] {
			continue
		}
		selected = append(selected, s)
		taken[i] = true
	}

	return selected
}
