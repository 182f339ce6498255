// Package shell is the interactive prompt: it reads a simulation count once,
// then asks for an attacker and defender count per battle and prints the
// attacker's odds until the input runs out.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Estimator is the core estimate, e.g. simulator.EstimateVictoryProbability.
type Estimator func(simulations, attackers, defenders int) (float64, error)

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// Run drives the prompt loop. It returns nil once in is exhausted.
func Run(in io.Reader, out io.Writer, estimate Estimator) error {
	p := prompter{scanner: bufio.NewScanner(in), out: out}

	simulations, err := p.readPositive("Enter number of simulations to run:")
	if err != nil {
		return ignoreEOF(err)
	}

	for battle := 1; ; battle++ {
		fmt.Fprintf(out, "========================BATTLE %d ======================== \n", battle)
		attackers, err := p.readInt("Enter number of attackers:")
		if err != nil {
			return ignoreEOF(err)
		}
		defenders, err := p.readInt("Enter number of defenders:")
		if err != nil {
			return ignoreEOF(err)
		}

		probability, err := estimate(simulations, attackers, defenders)
		if err != nil {
			fmt.Fprintf(out, "Cannot simulate battle: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Probability of victory is %f \n", probability)
	}
}

func (p prompter) readPositive(prompt string) (int, error) {
	for {
		n, err := p.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
		fmt.Fprintf(p.out, "Expected a positive number, got %d\n", n)
	}
}

// readInt prompts until a line holds a valid integer.
func (p prompter) readInt(prompt string) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s \n", prompt)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			return 0, io.EOF
		}
		line := strings.TrimSpace(p.scanner.Text())
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "Expected a whole number, got %q\n", line)
			continue
		}
		return n, nil
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
