package world

// SpawnApple turns a uniformly chosen field cell into an apple.
// It samples random positions first and falls back to picking from the
// list of free cells, so a crowded board never stalls.
func (g *Grid) SpawnApple() (Pos, error) {
	// Try random points until we find a field cell
	for i := 0; i < 4*len(g.cells); i++ {
		p := Pos{X: g.rng.Intn(g.Cols), Y: g.rng.Intn(g.Rows)}
		if g.At(p).Role == RoleField {
			g.SetRole(p, RoleApple, NoLink)
			return p, nil
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		return NoLink, ErrBoardFull
	}
	p := free[g.rng.Intn(len(free))]
	g.SetRole(p, RoleApple, NoLink)
	return p, nil
}

// freeCells returns every field position in row-major order.
func (g *Grid) freeCells() []Pos {
	var free []Pos
	g.Each(func(p Pos, c Cell) {
		if c.Role == RoleField {
			free = append(free, p)
		}
	})
	return free
}
