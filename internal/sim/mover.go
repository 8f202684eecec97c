package sim

// MovePipes scrolls every pipe by its velocity scaled by the difficulty
// multiplier, then removes pipes left of despawnX. It returns how many were removed.
func MovePipes(w *World, dt, multiplier, despawnX float64) int {
	pipes := w.Pipes()
	for i := range pipes {
		pipes[i].Pos.X += pipes[i].VelocityX * dt * multiplier
	}
	return w.RetainPipes(func(p Pipe) bool {
		return p.Pos.X >= despawnX
	})
}
