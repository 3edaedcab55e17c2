package get_availability

import (
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/occupancy"
)

// availableStarts проходит сетку и оставляет слоты, с которых услуга длительностью hours
// не пересекает занятые слоты и заканчивается не позже закрытия
func availableStarts(occ *occupancy.Occupancy, hours float64) []string {
	grid := domain.Slots()
	starts := make([]string, 0, len(grid))

	for i, slot := range grid {
		if occ.IntersectsAny(domain.SlotRun(i, hours)) {
			continue
		}

		fits, err := domain.FitsBeforeClosing(slot, hours)
		if err != nil || !fits {
			continue
		}

		starts = append(starts, slot)
	}

	return starts
}
