package sim

// Physics integrates the bird's vertical motion.
type Physics struct {
	Gravity     float64 // units/s^2, negative
	JumpImpulse float64 // units/s, positive
}

// Integrate applies one frame of explicit Euler integration:
// velocity first, then position with the new velocity. Nothing is clamped.
func (p Physics) Integrate(b *Bird, dt float64) {
	b.VelocityY += p.Gravity * dt
	b.Pos.Y += b.VelocityY * dt
}

// Jump overwrites the bird's vertical velocity with the jump impulse.
// Repeated jumps do not stack.
func (p Physics) Jump(b *Bird) {
	b.VelocityY = p.JumpImpulse
}
