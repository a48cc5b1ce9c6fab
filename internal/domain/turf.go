package domain

import "time"

// Coordinates optional geo point of a turf
type Coordinates struct {
	Lat *float64
	Lng *float64
}

// Location free-form address of a turf
type Location struct {
	State       string
	City        string
	Area        string
	Address     string
	Pincode     string
	Coordinates Coordinates
}

// SlotPrices holds one amount per fixed slot; missing entries are zero
type SlotPrices struct {
	Morning   float64
	Afternoon float64
	Evening   float64
	Night     float64
}

// For returns the amount for a slot, 0 for an unknown slot
func (p SlotPrices) For(slot Slot) float64 {
	switch slot {
	case SlotMorning:
		return p.Morning
	case SlotAfternoon:
		return p.Afternoon
	case SlotEvening:
		return p.Evening
	case SlotNight:
		return p.Night
	default:
		return 0
	}
}

// Total returns the sum over all four slots
// Используется в каталожном отчете по выручке
func (p SlotPrices) Total() float64 {
	return p.Morning + p.Afternoon + p.Evening + p.Night
}

// Turf represents a bookable sports venue owned by an operator
type Turf struct {
	ID             int64
	Name           string
	Location       Location
	Image          *string
	SportsCategory string
	Size           *string

	// CostPrice внутренняя цена оператора, клиенту не показывается
	CostPrice SlotPrices
	// CustomerPrice цена для клиента
	CustomerPrice SlotPrices

	CreatedBy  string // email администратора, создавшего площадку
	OwnerEmail string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfitFor returns the catalog-level per-slot margin
func (t *Turf) ProfitFor(slot Slot) float64 {
	return t.CustomerPrice.For(slot) - t.CostPrice.For(slot)
}
