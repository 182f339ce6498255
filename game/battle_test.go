package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestResolveRound(t *testing.T) {
	rules := NewStandardRules()

	t.Run("attacker sweeps the defenders", func(t *testing.T) {
		// Attacker rolls 4,6,5 (sorted 6,5,4), defender rolls 2,3 (sorted 3,2)
		die := newSequenceDie(4, 6, 5, 2, 3)

		got := ResolveRound(ArmyState{Attackers: 3, Defenders: 2}, rules, die)

		require.Equal(t, ArmyState{Attackers: 3, Defenders: 0}, got)
	})

	t.Run("tie at the top goes to the defender", func(t *testing.T) {
		die := newSequenceDie(6, 5, 4, 6, 2)

		got := ResolveRound(ArmyState{Attackers: 3, Defenders: 2}, rules, die)

		require.Equal(t, ArmyState{Attackers: 2, Defenders: 1}, got)
	})

	t.Run("dice are capped for large armies", func(t *testing.T) {
		// Exactly 3 attacker dice and 2 defender dice are drawn; a sixth roll would exhaust the die
		die := newSequenceDie(1, 1, 1, 6, 6)

		got := ResolveRound(ArmyState{Attackers: 10, Defenders: 10}, rules, die)

		require.Equal(t, ArmyState{Attackers: 8, Defenders: 10}, got)
		require.Equal(t, 5, die.next, "Should roll 3 attacker dice and 2 defender dice")
	})

	t.Run("a lone defender rolls a single die", func(t *testing.T) {
		die := newSequenceDie(1, 2, 3, 2)

		got := ResolveRound(ArmyState{Attackers: 5, Defenders: 1}, rules, die)

		require.Equal(t, ArmyState{Attackers: 5, Defenders: 0}, got)
		require.Equal(t, 4, die.next)
	})

	t.Run("panics when a side is already eliminated", func(t *testing.T) {
		require.Panics(t, func() {
			ResolveRound(ArmyState{Attackers: 3, Defenders: 0}, rules, constantDie(6))
		})
		require.Panics(t, func() {
			ResolveRound(ArmyState{Attackers: 0, Defenders: 2}, rules, constantDie(6))
		})
	})

	t.Run("every round removes min(dice) units and never goes negative", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			state := ArmyState{
				Attackers: rapid.IntRange(1, 100).Draw(rt, "attackers"),
				Defenders: rapid.IntRange(1, 100).Draw(rt, "defenders"),
			}
			seed := rapid.Uint64().Draw(rt, "seed")

			got := ResolveRound(state, rules, NewSeededDie(seed))

			removed := (state.Attackers - got.Attackers) + (state.Defenders - got.Defenders)
			expected := min(min(state.Attackers, 3), min(state.Defenders, 2))
			require.Equal(rt, expected, removed)
			require.GreaterOrEqual(rt, got.Attackers, 0)
			require.GreaterOrEqual(rt, got.Defenders, 0)
		})
	})
}

func TestFight(t *testing.T) {
	rules := NewStandardRules()

	t.Run("finished battles play no rounds", func(t *testing.T) {
		for _, state := range []ArmyState{{5, 0}, {0, 5}, {0, 0}} {
			got, rounds := Fight(state, rules, constantDie(6))

			require.Equal(t, state, got)
			require.Equal(t, 0, rounds)
		}
	})

	t.Run("attacker always wins when the defender always rolls ones", func(t *testing.T) {
		// Attacker rolls 2s, defender rolls 1s
		die := &alternatingDie{attacker: 2, defender: 1, attackerDice: 3, defenderDice: 2}

		got, rounds := Fight(ArmyState{Attackers: 3, Defenders: 4}, rules, die)

		require.True(t, got.AttackerWon())
		require.Equal(t, ArmyState{Attackers: 3, Defenders: 0}, got)
		require.Equal(t, 2, rounds)
	})

	t.Run("defender always wins on ties", func(t *testing.T) {
		got, _ := Fight(ArmyState{Attackers: 7, Defenders: 1}, rules, constantDie(3))

		require.False(t, got.AttackerWon())
		require.Equal(t, ArmyState{Attackers: 0, Defenders: 1}, got)
	})

	t.Run("battles always end with one side eliminated", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			start := ArmyState{
				Attackers: rapid.IntRange(1, 60).Draw(rt, "attackers"),
				Defenders: rapid.IntRange(1, 60).Draw(rt, "defenders"),
			}
			seed := rapid.Uint64().Draw(rt, "seed")

			got, rounds := Fight(start, rules, NewSeededDie(seed))

			require.False(rt, got.InProgress())
			require.True(rt, got.Attackers == 0 || got.Defenders == 0)
			require.LessOrEqual(rt, rounds, start.Attackers+start.Defenders-1)
		})
	})
}

// alternatingDie rolls a fixed face for the attacker's dice and another for the
// defender's, following the attacker-then-defender draw order of a round.
type alternatingDie struct {
	attacker, defender         int
	attackerDice, defenderDice int
	drawn                      int
}

func (d *alternatingDie) Roll() int {
	defer func() { d.drawn++ }()
	if d.drawn%(d.attackerDice+d.defenderDice) < d.attackerDice {
		return d.attacker
	}
	return d.defender
}
