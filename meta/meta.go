// meta/meta.go
package meta

// GO_ROUTINES defines the default number of simulation workers.
const GO_ROUTINES = 8

// SIMULATIONS defines the default number of trials per estimate.
const SIMULATIONS = 100000

// MAX_ATTACKERS bounds the attacker axis of the odds table.
const MAX_ATTACKERS = 10

// MAX_DEFENDERS bounds the defender axis of the odds table.
const MAX_DEFENDERS = 10

// OUTPUT_DIR is where experiment results are written.
const OUTPUT_DIR = "experiments"

const LOG_LEVEL = "info"
