package game

// OfferActions samples up to n distinct actions that are unlocked for s and
// not yet used. Affordability is not checked here: the player sees what
// they cannot pay for. An empty pool yields an empty offer.
func OfferActions(c *Catalog, s *GameState, rng *RNG, n int) []Action {
	if n <= 0 {
		return nil
	}
	eligible := make([]Action, 0, len(c.Actions))
	for _, a := range c.Actions {
		if s.Used(a.ID) || !a.Unlock.Allows(s) {
			continue
		}
		eligible = append(eligible, a)
	}
	if len(eligible) == 0 {
		return nil
	}

	k := min(n, len(eligible))
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(eligible)-i)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}
	return append([]Action(nil), eligible[:k]...)
}

// SelectEvent draws the generation's single event. Interactive events
// active at year take precedence over automatic ones.
func SelectEvent(c *Catalog, year int, rng *RNG) (Event, bool) {
	var interactive, automatic []Event
	for _, e := range c.Events {
		if !e.ActiveAt(year) {
			continue
		}
		if e.Interactive() {
			interactive = append(interactive, e)
		} else {
			automatic = append(automatic, e)
		}
	}

	pool := automatic
	if len(interactive) > 0 {
		pool = interactive
	}
	if len(pool) == 0 {
		return Event{}, false
	}

	weights := make([]int, len(pool))
	for i, e := range pool {
		weights[i] = e.Weight
	}
	return pool[rng.WeightedIndex(weights)], true
}

func SelectLoreDrop(c *Catalog, era Era, rng *RNG) (LoreDrop, bool) {
	var pool []LoreDrop
	for _, l := range c.Lore {
		if l.Era == era {
			pool = append(pool, l)
		}
	}
	if len(pool) == 0 {
		return LoreDrop{}, false
	}
	weights := make([]int, len(pool))
	for i, l := range pool {
		weights[i] = l.Weight
	}
	return pool[rng.WeightedIndex(weights)], true
}
