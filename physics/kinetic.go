package physics

import (
	"github.com/lixenwraith/elf-bizniz/core"
)

// ApplyGravity performs v = v - g*dt on the vertical axis, capping fall speed when maxFall > 0
func ApplyGravity(a *core.Actor, gravity, maxFall, dt float64) {
	a.VY -= gravity * dt
	if maxFall > 0 && a.VY < -maxFall {
		a.VY = -maxFall
	}
}
