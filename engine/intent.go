package engine

// Intent is the player input for one tick
// Move components are reduced to their sign
type Intent struct {
	MoveX, MoveY int
	Fire         bool
}

// Idle is the intent of a tick with no input
var Idle = Intent{}

func (i Intent) normalized() Intent {
	return Intent{MoveX: sign(i.MoveX), MoveY: sign(i.MoveY), Fire: i.Fire}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
