package game

const (
	MAX_ATTACK_DICE = 3
	MAX_DEFEND_DICE = 2
)

type StandardRules struct {
	maxAttackDice int
	maxDefendDice int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		maxAttackDice: MAX_ATTACK_DICE,
		maxDefendDice: MAX_DEFEND_DICE,
	}
}

func (sr *StandardRules) MaxAttackDice() int {
	return sr.maxAttackDice
}

func (sr *StandardRules) MaxDefendDice() int {
	return sr.maxDefendDice
}

func (sr *StandardRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int) {
	// Unpaired dice are rolled but never cause casualties
	battles := min(len(attackerRolls), len(defenderRolls))
	for i := 0; i < battles; i++ {
		// Ties go to the defender
		if attackerRolls[i] > defenderRolls[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return
}
