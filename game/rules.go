package game

// Rules caps how many dice each side may commit in a round and decides the
// casualties of a round from both sides' sorted rolls.
type Rules interface {
	MaxAttackDice() int
	MaxDefendDice() int
	// DetermineAttackOutcome expects both roll sets sorted in descending order.
	DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int)
}
