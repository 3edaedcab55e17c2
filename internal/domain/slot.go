package domain

import (
	"fmt"
	"math"
	"time"
)

// slotGrid фиксированная сетка времен начала на рабочий день, в хронологическом порядке
// Сетка одинакова для всех дат (без переопределений по датам)
var slotGrid = []string{
	"8:00 AM",
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

// Slots возвращает копию сетки слотов
func Slots() []string {
	out := make([]string, len(slotGrid))
	copy(out, slotGrid)
	return out
}

// SlotCount количество слотов в сетке
func SlotCount() int {
	return len(slotGrid)
}

// FirstSlot первый слот дня, используется как fallback для нечитаемых записей
func FirstSlot() string {
	return slotGrid[0]
}

// LastSlot последний слот дня
func LastSlot() string {
	return slotGrid[len(slotGrid)-1]
}

// SlotIndex ищет слот по точному совпадению метки
func SlotIndex(label string) (int, bool) {
	for i, s := range slotGrid {
		if s == label {
			return i, true
		}
	}
	return -1, false
}

// ParseClockLabel разбирает метку вида "9:00 AM" в часы и минуты 24-часового формата
// 12:00 PM - полдень (12), 12:00 AM - полночь (0)
func ParseClockLabel(label string) (hour, minute int, err error) {
	t, err := time.Parse(ClockLabelFormat, label)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClockLabel, label)
	}
	return t.Hour(), t.Minute(), nil
}

// HoursSinceOpen смещение метки от начала рабочего дня в целых часах
// Метки нельзя сравнивать как строки ("10:00 AM" < "8:00 AM"), поэтому сравнение идет по смещению
func HoursSinceOpen(label string) (int, error) {
	hour, _, err := ParseClockLabel(label)
	if err != nil {
		return 0, err
	}
	return hour - OpeningHour, nil
}

// ClosingOffset граница закрытия: через час после начала последнего слота
func ClosingOffset() int {
	last, err := HoursSinceOpen(LastSlot())
	if err != nil {
		// Сетка статическая, ошибка здесь - дефект сборки
		panic(err)
	}
	return last + 1
}

// SlotsForDuration количество часовых слотов, которые занимает услуга
// Дробная длительность округляется вверх: 2.5 часа занимают 3 слота.
// Неположительная длительность не занимает ни одного слота
func SlotsForDuration(hours float64) int {
	if hours <= 0 || math.IsNaN(hours) {
		return 0
	}
	// Длиннее дня услуга все равно не займет больше, чем вся сетка
	if hours >= float64(len(slotGrid)) {
		return len(slotGrid)
	}
	return int(math.Ceil(hours))
}

// SlotRun метки подряд идущих слотов, начиная с startIndex, для услуги длительностью hours
// Если услуга выходит за последний слот, хвост отбрасывается (min(слотов, осталось))
func SlotRun(startIndex int, hours float64) []string {
	if startIndex < 0 || startIndex >= len(slotGrid) {
		return nil
	}

	n := SlotsForDuration(hours)
	if remaining := len(slotGrid) - startIndex; n > remaining {
		n = remaining
	}
	if n == 0 {
		return nil
	}

	run := make([]string, n)
	copy(run, slotGrid[startIndex:startIndex+n])
	return run
}

// FitsBeforeClosing проверяет, что услуга, начатая в label, заканчивается не позже закрытия
func FitsBeforeClosing(label string, hours float64) (bool, error) {
	offset, err := HoursSinceOpen(label)
	if err != nil {
		return false, err
	}
	return float64(offset)+hours <= float64(ClosingOffset()), nil
}
