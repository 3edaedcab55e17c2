package occupancy

import "github.com/m04kA/SMC-DetailingBooking/internal/domain"

// Occupancy множество занятых слотов даты
// Degraded = true, если хранилище не ответило и множество пустое не потому, что день свободен
type Occupancy struct {
	Date     string
	Degraded bool

	slots map[string]struct{}
}

// New создает множество занятости даты из меток слотов
func New(date string, labels ...string) *Occupancy {
	o := &Occupancy{Date: date, slots: make(map[string]struct{})}
	o.add(labels...)
	return o
}

func (o *Occupancy) add(labels ...string) {
	for _, l := range labels {
		o.slots[l] = struct{}{}
	}
}

// Contains занят ли слот
func (o *Occupancy) Contains(label string) bool {
	_, ok := o.slots[label]
	return ok
}

// IntersectsAny занят ли хотя бы один из слотов
func (o *Occupancy) IntersectsAny(labels []string) bool {
	for _, l := range labels {
		if o.Contains(l) {
			return true
		}
	}
	return false
}

// Len количество занятых слотов
func (o *Occupancy) Len() int {
	return len(o.slots)
}

// Labels занятые слоты в порядке сетки
func (o *Occupancy) Labels() []string {
	out := make([]string, 0, len(o.slots))
	for _, s := range domain.Slots() {
		if o.Contains(s) {
			out = append(out, s)
		}
	}
	return out
}
