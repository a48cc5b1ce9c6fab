package revenue_dashboard

// Request модель запроса аналитики по выручке
type Request struct {
	// OwnerEmail ограничивает выборку площадками владельца; пустое значение — вся платформа
	OwnerEmail string
}

// DateRevenue выручка за календарный день
type DateRevenue struct {
	Date    string  `json:"date"` // ISO-дата YYYY-MM-DD
	Revenue float64 `json:"revenue"`
}

// TurfRevenue выручка по площадке
type TurfRevenue struct {
	TurfName string  `json:"turfName"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// Metrics агрегированные показатели по оплаченным бронированиям
type Metrics struct {
	TotalRevenue  float64       `json:"totalRevenue"`
	TotalBookings int           `json:"totalBookings"`
	AvgRevenue    float64       `json:"avgRevenue"`
	TotalProfit   float64       `json:"totalProfit"`
	RevenueByDate []DateRevenue `json:"revenueByDate"`
	RevenueByTurf []TurfRevenue `json:"revenueByTurf"`
}
