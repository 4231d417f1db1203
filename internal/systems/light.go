package systems

import (
	"moria-kernel/internal/domain"
	"moria-kernel/pkg/logger"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// UpdateTorchLight recomputes the torch flags around the bearer at (y, x):
// every cell within radius (game distance) and in line of sight is lit for
// this turn, everything else loses its torch flag. Walls caught by the light
// are field-marked so they stay drawn once the light moves on. Returns the
// number of lit cells.
func UpdateTorchLight(cave *domain.Cave, y, x, radius int) int {
	lightLogger := logger.Log.WithFields(logrus.Fields{
		"component": "light_system",
		"y":         y,
		"x":         x,
	})

	for i := range cave.Cells {
		cave.Cells[i].Torch = false
	}

	if radius <= 0 {
		lightLogger.Debug("Torch light skipped, no light source.")
		return 0
	}

	area := gruid.NewRange(x-radius, y-radius, x+radius+1, y+radius+1).Intersect(cave.Range())
	lit := 0
	area.Iter(func(p gruid.Point) {
		if domain.Distance(y, x, p.Y, p.X) > radius {
			return
		}
		if !LineOfSight(cave, y, x, p.Y, p.X) {
			return
		}
		cell := cave.At(p.Y, p.X)
		cell.Torch = true
		if cell.Fval >= domain.MinClosedSpace {
			cell.Mark = true
		}
		lit++
	})

	lightLogger.WithField("lit_cells", lit).Debug("Torch light updated.")
	return lit
}
