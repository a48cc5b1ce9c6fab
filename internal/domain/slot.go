package domain

import "errors"

// ErrUnknownSlot returned when a slot name is outside the fixed enumeration
var ErrUnknownSlot = errors.New("unknown slot")

// Slot represents one of the four fixed daily time partitions of a turf
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
	SlotNight     Slot = "night"
)

// AllSlots перечисление слотов в порядке суток
var AllSlots = []Slot{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}

// ParseSlot validates a raw slot name against the fixed enumeration
func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	for _, valid := range AllSlots {
		if slot == valid {
			return slot, nil
		}
	}
	return "", ErrUnknownSlot
}

// IsValid returns true if the slot is one of the four enumerated values
func (s Slot) IsValid() bool {
	_, err := ParseSlot(string(s))
	return err == nil
}
