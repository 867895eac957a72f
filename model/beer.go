package model

import "time"

type Beer struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	BreweryID   int       `json:"brewery_id"`
	StyleID     int       `json:"style_id"`
	ABV         float64   `json:"abv"`
	IBU         int       `json:"ibu"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Brewery struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

type Style struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
