package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardRules(t *testing.T) {
	rules := NewStandardRules()

	t.Run("dice caps", func(t *testing.T) {
		require.Equal(t, 3, rules.MaxAttackDice())
		require.Equal(t, 2, rules.MaxDefendDice())
	})

	t.Run("attacker wins both pairs", func(t *testing.T) {
		attackerLosses, defenderLosses := rules.DetermineAttackOutcome([]int{6, 5, 4}, []int{3, 2})

		require.Equal(t, 0, attackerLosses)
		require.Equal(t, 2, defenderLosses)
	})

	t.Run("ties go to the defender", func(t *testing.T) {
		attackerLosses, defenderLosses := rules.DetermineAttackOutcome([]int{4, 4}, []int{4, 4})

		require.Equal(t, 2, attackerLosses, "Should count every tie as an attacker loss")
		require.Equal(t, 0, defenderLosses)
	})

	t.Run("only the shorter side's dice are paired", func(t *testing.T) {
		attackerLosses, defenderLosses := rules.DetermineAttackOutcome([]int{6, 6, 6}, []int{1})

		require.Equal(t, 0, attackerLosses)
		require.Equal(t, 1, defenderLosses, "Should not inflict casualties with unpaired dice")
	})

	t.Run("split outcome", func(t *testing.T) {
		attackerLosses, defenderLosses := rules.DetermineAttackOutcome([]int{6, 5, 4}, []int{6, 2})

		require.Equal(t, 1, attackerLosses)
		require.Equal(t, 1, defenderLosses)
	})
}
