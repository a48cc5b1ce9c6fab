package revenue_dashboard

import (
	"sort"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// Aggregate считает метрики дашборда по списку бронирований
// Учитываются только оплаченные бронирования; выручка считается по списанной
// сумме (цена минус скидка), прибыль дополнительно вычитает себестоимость слота
func Aggregate(bookings []*domain.BookingWithTurf) *Metrics {
	metrics := &Metrics{
		RevenueByDate: []DateRevenue{},
		RevenueByTurf: []TurfRevenue{},
	}

	byDate := make(map[string]float64)
	byTurfRevenue := make(map[string]float64)
	byTurfCount := make(map[string]int)

	for _, b := range bookings {
		if !b.IsPaid() {
			continue
		}

		net := b.NetAmount()

		metrics.TotalRevenue += net
		metrics.TotalBookings++
		metrics.TotalProfit += b.Profit()

		byDate[b.BookingDate.Format(domain.DateFormat)] += net

		name := b.TurfName()
		byTurfRevenue[name] += net
		byTurfCount[name]++
	}

	if metrics.TotalBookings > 0 {
		metrics.AvgRevenue = metrics.TotalRevenue / float64(metrics.TotalBookings)
	}

	// ISO-даты сортируются лексикографически в хронологическом порядке
	for date, revenue := range byDate {
		metrics.RevenueByDate = append(metrics.RevenueByDate, DateRevenue{Date: date, Revenue: revenue})
	}
	sort.Slice(metrics.RevenueByDate, func(i, j int) bool {
		return metrics.RevenueByDate[i].Date < metrics.RevenueByDate[j].Date
	})

	for name, revenue := range byTurfRevenue {
		metrics.RevenueByTurf = append(metrics.RevenueByTurf, TurfRevenue{
			TurfName: name,
			Revenue:  revenue,
			Bookings: byTurfCount[name],
		})
	}
	sort.Slice(metrics.RevenueByTurf, func(i, j int) bool {
		return metrics.RevenueByTurf[i].TurfName < metrics.RevenueByTurf[j].TurfName
	})

	return metrics
}
