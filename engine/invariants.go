package engine

import (
	"fmt"

	"github.com/lixenwraith/duck-hunt/component"
)

// checkInvariants verifies state that must hold after every tick
// A violation is a simulation bug, never an input error
func (s *Session) checkInvariants(prevScore, prevDelay int) error {
	for i := range s.birds {
		b := &s.birds[i]
		if b.Frame() > component.FrameDead {
			return fmt.Errorf("bird %d: frame %d out of range", i, b.Frame())
		}
		if !b.Dead() && b.Frame() == component.FrameDead {
			return fmt.Errorf("bird %d: live bird on dead frame", i)
		}
		if b.Dead() && b.Frame() != component.FrameDead {
			return fmt.Errorf("bird %d: dead bird on frame %d", i, b.Frame())
		}
	}

	if ammo := s.econ.Ammo(); ammo < 0 || ammo > s.econ.AmmoMax() {
		return fmt.Errorf("ammo %d outside [0, %d]", ammo, s.econ.AmmoMax())
	}
	if s.econ.Score() < prevScore {
		return fmt.Errorf("score decreased from %d to %d", prevScore, s.econ.Score())
	}

	delay := s.spawner.Delay()
	if delay > prevDelay {
		return fmt.Errorf("spawn delay increased from %d to %d", prevDelay, delay)
	}
	if delay < s.spawner.Floor() {
		return fmt.Errorf("spawn delay %d below floor %d", delay, s.spawner.Floor())
	}
	return nil
}
