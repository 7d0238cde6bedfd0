package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/duck-hunt/config"
	"github.com/lixenwraith/duck-hunt/vmath"
)

// randomIntent drives a session with a reproducible input stream
func randomIntent(r *vmath.FastRand) Intent {
	return Intent{
		MoveX: r.Intn(3) - 1,
		MoveY: r.Intn(3) - 1,
		Fire:  r.Intn(4) == 0,
	}
}

func TestInvariantsHoldOverLongSessions(t *testing.T) {
	for _, bullets := range []bool{false, true} {
		cfg := config.Default()
		cfg.BulletsEnabled = bullets
		cfg.SpawnDelayInitial = 12
		cfg.SpawnDelayFloor = 4
		cfg.InstantHitReward = 2
		cfg.Seed = 2024

		s := NewSession(cfg)
		input := vmath.NewFastRand(99)

		prevScore := 0
		prevDelay := s.Snapshot().SpawnDelay
		for i := 0; i < 3000; i++ {
			snap := s.Tick(randomIntent(input))

			require.GreaterOrEqual(t, snap.Ammo, 0, "tick %d", i)
			require.LessOrEqual(t, snap.Ammo, cfg.AmmoMax, "tick %d", i)
			require.GreaterOrEqual(t, snap.Score, prevScore, "tick %d", i)
			require.LessOrEqual(t, snap.SpawnDelay, prevDelay, "tick %d", i)
			require.GreaterOrEqual(t, snap.SpawnDelay, cfg.SpawnDelayFloor, "tick %d", i)
			require.NoError(t, s.checkInvariants(prevScore, prevDelay), "tick %d", i)

			for _, b := range snap.Birds {
				if b.Dead {
					require.EqualValues(t, 4, b.Frame)
				} else {
					require.Less(t, int(b.Frame), 4)
				}
			}
			if snap.GameOver {
				require.Zero(t, snap.Ammo)
				require.Empty(t, snap.Bullets)
				break
			}

			prevScore, prevDelay = snap.Score, snap.SpawnDelay
		}
	}
}

func TestCheckInvariantsDetectsRegression(t *testing.T) {
	s := NewSession(quietConfig())
	require.Error(t, s.checkInvariants(s.econ.Score()+1, s.spawner.Delay()), "score went down")
	require.Error(t, s.checkInvariants(0, s.spawner.Delay()-1), "delay went up")
	require.NoError(t, s.checkInvariants(0, s.spawner.Delay()))
}
