package schedule

import (
	"fmt"
	"sync"
)

const (
	openingHour = 9
	closingHour = 18
)

var (
	slotsOnce sync.Once
	slotCache []string
)

// Slots returns the fixed sequence of half-hour time labels from "09:00" to
// "18:00" inclusive (19 slots). The sequence is generated once per process.
func Slots() []string {
	slotsOnce.Do(func() {
		for h := openingHour; h <= closingHour; h++ {
			for _, m := range []int{0, 30} {
				if h == closingHour && m > 0 {
					break
				}
				slotCache = append(slotCache, fmt.Sprintf("%02d:%02d", h, m))
			}
		}
	})
	out := make([]string, len(slotCache))
	copy(out, slotCache)
	return out
}

// ValidSlot reports whether s is one of the generated slot labels.
func ValidSlot(s string) bool {
	for _, slot := range Slots() {
		if slot == s {
			return true
		}
	}
	return false
}
