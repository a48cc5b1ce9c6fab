package models

import (
	"time"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// Request модели

// LocationPayload адрес площадки в запросах и ответах
type LocationPayload struct {
	State   string   `json:"state"`
	City    string   `json:"city"`
	Area    string   `json:"area"`
	Address string   `json:"address"`
	Pincode string   `json:"pincode"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// SlotPricesPayload цены по четырём слотам
// Отсутствующие слоты трактуются как 0
type SlotPricesPayload struct {
	Morning   float64 `json:"morning"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
	Night     float64 `json:"night"`
}

// SaveTurfRequest запрос на создание или обновление площадки
type SaveTurfRequest struct {
	Name           string            `json:"name"`
	Location       LocationPayload   `json:"location"`
	Image          *string           `json:"image,omitempty"`
	SportsCategory string            `json:"sportsCategory"`
	Size           *string           `json:"size,omitempty"`
	CostPrice      SlotPricesPayload `json:"costPrice"`
	CustomerPrice  SlotPricesPayload `json:"customerPrice"`
	OwnerEmail     string            `json:"ownerEmail"`

	// RequesterEmail идентификатор вызывающего из заголовка X-User-Email
	RequesterEmail string `json:"-"`
}

// ToDomainTurf конвертирует запрос в domain модель
func (r *SaveTurfRequest) ToDomainTurf() *domain.Turf {
	return &domain.Turf{
		Name: r.Name,
		Location: domain.Location{
			State:   r.Location.State,
			City:    r.Location.City,
			Area:    r.Location.Area,
			Address: r.Location.Address,
			Pincode: r.Location.Pincode,
			Coordinates: domain.Coordinates{
				Lat: r.Location.Lat,
				Lng: r.Location.Lng,
			},
		},
		Image:          r.Image,
		SportsCategory: r.SportsCategory,
		Size:           r.Size,
		CostPrice:      toDomainPrices(r.CostPrice),
		CustomerPrice:  toDomainPrices(r.CustomerPrice),
		CreatedBy:      r.RequesterEmail,
		OwnerEmail:     r.OwnerEmail,
	}
}

func toDomainPrices(p SlotPricesPayload) domain.SlotPrices {
	return domain.SlotPrices{
		Morning:   p.Morning,
		Afternoon: p.Afternoon,
		Evening:   p.Evening,
		Night:     p.Night,
	}
}

// Response модели

// TurfResponse ответ с данными площадки
// CostPrice присутствует в ответе: каталог читают владельцы и админы
type TurfResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Location       LocationPayload   `json:"location"`
	Image          *string           `json:"image,omitempty"`
	SportsCategory string            `json:"sportsCategory"`
	Size           *string           `json:"size,omitempty"`
	CostPrice      SlotPricesPayload `json:"costPrice"`
	CustomerPrice  SlotPricesPayload `json:"customerPrice"`
	CreatedBy      string            `json:"createdBy"`
	OwnerEmail     string            `json:"ownerEmail"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// TurfListResponse ответ со списком площадок
type TurfListResponse struct {
	Turfs []TurfResponse `json:"turfs"`
}

// TurfRevenueResponse строка каталожного отчета по выручке
// Считается по прайс-листу площадки, независимо от бронирований
type TurfRevenueResponse struct {
	Name            string  `json:"name"`
	CostRevenue     float64 `json:"costRevenue"`
	CustomerRevenue float64 `json:"customerRevenue"`
	Profit          float64 `json:"profit"`
}

// Методы конвертации

// FromDomainTurf конвертирует domain модель в DTO
func FromDomainTurf(t *domain.Turf) *TurfResponse {
	if t == nil {
		return nil
	}

	return &TurfResponse{
		ID:   t.ID,
		Name: t.Name,
		Location: LocationPayload{
			State:   t.Location.State,
			City:    t.Location.City,
			Area:    t.Location.Area,
			Address: t.Location.Address,
			Pincode: t.Location.Pincode,
			Lat:     t.Location.Coordinates.Lat,
			Lng:     t.Location.Coordinates.Lng,
		},
		Image:          t.Image,
		SportsCategory: t.SportsCategory,
		Size:           t.Size,
		CostPrice:      fromDomainPrices(t.CostPrice),
		CustomerPrice:  fromDomainPrices(t.CustomerPrice),
		CreatedBy:      t.CreatedBy,
		OwnerEmail:     t.OwnerEmail,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func fromDomainPrices(p domain.SlotPrices) SlotPricesPayload {
	return SlotPricesPayload{
		Morning:   p.Morning,
		Afternoon: p.Afternoon,
		Evening:   p.Evening,
		Night:     p.Night,
	}
}

// FromDomainTurfList конвертирует список domain моделей в DTO
func FromDomainTurfList(turfs []*domain.Turf) *TurfListResponse {
	resp := &TurfListResponse{
		Turfs: make([]TurfResponse, 0, len(turfs)),
	}

	for _, turf := range turfs {
		if turfResp := FromDomainTurf(turf); turfResp != nil {
			resp.Turfs = append(resp.Turfs, *turfResp)
		}
	}

	return resp
}
