package dto

import "github.com/BruksfildServices01/cafe-api/internal/models"

type CafeDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	MapURL       string  `json:"map_url"`
	ImgURL       string  `json:"img_url"`
	Location     string  `json:"location"`
	Seats        string  `json:"seats"`
	HasToilet    bool    `json:"has_toilet"`
	HasWifi      bool    `json:"has_wifi"`
	HasSockets   bool    `json:"has_sockets"`
	CanTakeCalls bool    `json:"can_take_calls"`
	CoffeePrice  *string `json:"coffee_price"`
}

func FromCafe(c *models.Cafe) CafeDTO {
	return CafeDTO{
		ID:           c.ID,
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		Seats:        c.Seats,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		HasSockets:   c.HasSockets,
		CanTakeCalls: c.CanTakeCalls,
		CoffeePrice:  c.CoffeePrice,
	}
}

func FromCafes(cafes []models.Cafe) []CafeDTO {
	out := make([]CafeDTO, 0, len(cafes))
	for i := range cafes {
		out = append(out, FromCafe(&cafes[i]))
	}
	return out
}
