package system

// Economy holds the ammo pool and the score
// Ammo stays within [0, ammoMax] and the score never decreases
type Economy struct {
	ammo    int
	ammoMax int
	score   int
}

// NewEconomy creates a pool holding initial rounds, clamped to [0, max]
func NewEconomy(initial, max int) Economy {
	if max < 0 {
		max = 0
	}
	return Economy{ammo: clampAmmo(initial, max), ammoMax: max}
}

func (e *Economy) Ammo() int    { return e.ammo }
func (e *Economy) AmmoMax() int { return e.ammoMax }
func (e *Economy) Score() int   { return e.score }
func (e *Economy) Empty() bool  { return e.ammo == 0 }

// TryConsume spends one round, returns false without mutation when empty
func (e *Economy) TryConsume() bool {
	if e.ammo <= 0 {
		return false
	}
	e.ammo--
	return true
}

// Reward adds ammo, re-clamped to the ceiling, and score
// Negative score is ignored
func (e *Economy) Reward(ammo, score int) {
	e.ammo = clampAmmo(e.ammo+ammo, e.ammoMax)
	if score > 0 {
		e.score += score
	}
}

func clampAmmo(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
