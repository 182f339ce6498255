package game

import (
	"fmt"
	"sort"
)

// ArmyState holds the units each side has left during a single battle.
type ArmyState struct {
	Attackers int
	Defenders int
}

// InProgress reports whether both sides still have units to fight with.
func (s ArmyState) InProgress() bool {
	return s.Attackers > 0 && s.Defenders > 0
}

// AttackerWon reports whether the attacker still holds units. Only meaningful
// once the battle is no longer in progress.
func (s ArmyState) AttackerWon() bool {
	return s.Attackers > 0
}

func (s ArmyState) String() string {
	return fmt.Sprintf("%d vs %d", s.Attackers, s.Defenders)
}

// ResolveRound plays a single round of dice: both sides roll up to their cap,
// rolls are compared highest against highest, and the losses are applied.
// The attacker always rolls before the defender.
func ResolveRound(state ArmyState, rules Rules, die Die) ArmyState {
	if !state.InProgress() {
		panic(fmt.Sprintf("cannot resolve a round for a finished battle (%s)", state))
	}

	// Determine dice count
	attackerDice := min(state.Attackers, rules.MaxAttackDice())
	defenderDice := min(state.Defenders, rules.MaxDefendDice())

	attackerRolls := RollDice(die, attackerDice)
	defenderRolls := RollDice(die, defenderDice)

	// Sort dice rolls
	sort.Sort(sort.Reverse(sort.IntSlice(attackerRolls)))
	sort.Sort(sort.Reverse(sort.IntSlice(defenderRolls)))

	attackerLosses, defenderLosses := rules.DetermineAttackOutcome(attackerRolls, defenderRolls)

	return ArmyState{
		Attackers: state.Attackers - attackerLosses,
		Defenders: state.Defenders - defenderLosses,
	}
}

// Fight resolves rounds until one side is eliminated and returns the final
// state along with the number of rounds played. A state that starts finished
// is returned unchanged after zero rounds.
func Fight(state ArmyState, rules Rules, die Die) (ArmyState, int) {
	rounds := 0
	for state.InProgress() {
		state = ResolveRound(state, rules, die)
		rounds++
	}
	return state, rounds
}
