// Package odds computes exact battle outcome probabilities by enumerating
// every roll of a round and walking the resulting chain of army states.
package odds

import (
	"errors"
	"fmt"
	"riskodds/game"
	"sort"
	"sync"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Losses is the number of units each side loses in one round.
type Losses struct {
	Attacker int
	Defender int
}

type matchup struct {
	attackerDice int
	defenderDice int
}

var (
	rules      = game.NewStandardRules()
	roundsOnce sync.Once
	rounds     map[matchup]map[Losses]float64
)

// RoundOutcomes returns the probability of every loss combination for a
// single round with the given number of dice per side.
func RoundOutcomes(attackerDice, defenderDice int) map[Losses]float64 {
	if attackerDice < 1 || attackerDice > rules.MaxAttackDice() || defenderDice < 1 || defenderDice > rules.MaxDefendDice() {
		panic(fmt.Sprintf("no round with %d attacker and %d defender dice", attackerDice, defenderDice))
	}
	roundsOnce.Do(enumerateRounds)
	return rounds[matchup{attackerDice, defenderDice}]
}

func enumerateRounds() {
	rounds = make(map[matchup]map[Losses]float64)
	for a := 1; a <= rules.MaxAttackDice(); a++ {
		for d := 1; d <= rules.MaxDefendDice(); d++ {
			rounds[matchup{a, d}] = enumerate(a, d)
		}
	}
}

func enumerate(attackerDice, defenderDice int) map[Losses]float64 {
	counts := make(map[Losses]int)
	total := 0
	for _, attackerRolls := range allRolls(attackerDice) {
		for _, defenderRolls := range allRolls(defenderDice) {
			a := sortedDesc(attackerRolls)
			d := sortedDesc(defenderRolls)
			attackerLosses, defenderLosses := rules.DetermineAttackOutcome(a, d)
			counts[Losses{attackerLosses, defenderLosses}]++
			total++
		}
	}

	outcomes := make(map[Losses]float64, len(counts))
	for losses, count := range counts {
		outcomes[losses] = float64(count) / float64(total)
	}
	return outcomes
}

func allRolls(dice int) [][]int {
	if dice == 0 {
		return [][]int{nil}
	}
	var out [][]int
	for _, sub := range allRolls(dice - 1) {
		for face := 1; face <= game.DIE_FACES; face++ {
			out = append(out, append([]int{face}, sub...))
		}
	}
	return out
}

func sortedDesc(rolls []int) []int {
	sorted := make([]int, len(rolls))
	copy(sorted, rolls)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted
}

// WinProbability returns the exact probability that attackers eliminate
// defenders. Zero defenders with a non-zero attacker is a certain win and zero
// attackers is a certain loss.
func WinProbability(attackers, defenders int) (float64, error) {
	if attackers < 0 || defenders < 0 {
		return 0, fmt.Errorf("%w: army sizes cannot be negative, got %d vs %d", ErrInvalidArgument, attackers, defenders)
	}

	// win[a][d] is filled so that every state a round can lead to is known
	// before it is needed
	win := make([][]float64, attackers+1)
	for a := range win {
		win[a] = make([]float64, defenders+1)
	}
	for a := 1; a <= attackers; a++ {
		win[a][0] = 1
		for d := 1; d <= defenders; d++ {
			outcomes := RoundOutcomes(min(a, rules.MaxAttackDice()), min(d, rules.MaxDefendDice()))
			p := 0.0
			for losses, prob := range outcomes {
				p += prob * win[a-losses.Attacker][d-losses.Defender]
			}
			win[a][d] = p
		}
	}
	return win[attackers][defenders], nil
}
