package simulator

// constantDie always rolls the same face.
type constantDie int

func (d constantDie) Roll() int {
	return int(d)
}
