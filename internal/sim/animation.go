package sim

// Animation cycles a frame index at a fixed rate while the bird is alive.
type Animation struct {
	Frame  int
	Frames int
	timer  Timer
}

// NewAnimation creates an animation with the given frame count and frames per second.
func NewAnimation(frames int, fps float64) Animation {
	if frames < 1 {
		frames = 1
	}
	period := 0.0
	if fps > 0 {
		period = 1.0 / fps
	}
	return Animation{Frames: frames, timer: NewTimer(period)}
}

// Advance moves the animation forward by dt seconds.
func (a *Animation) Advance(dt float64) {
	steps := a.timer.Tick(dt)
	if steps == 0 || a.Frames <= 1 {
		return
	}
	a.Frame = (a.Frame + steps) % a.Frames
}
