package game

// sequenceDie replays a fixed list of rolls and panics once exhausted.
type sequenceDie struct {
	rolls []int
	next  int
}

func newSequenceDie(rolls ...int) *sequenceDie {
	return &sequenceDie{rolls: rolls}
}

func (d *sequenceDie) Roll() int {
	if d.next >= len(d.rolls) {
		panic("sequence die exhausted")
	}
	roll := d.rolls[d.next]
	d.next++
	return roll
}

// constantDie always rolls the same face.
type constantDie int

func (d constantDie) Roll() int {
	return int(d)
}
