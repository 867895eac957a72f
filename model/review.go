package model

import "time"

type Review struct {
	ID             int       `json:"id"`
	BeerID         int       `json:"beer_id"`
	UserID         int       `json:"user_id"`
	Rating         int       `json:"rating"`
	Smell          int       `json:"smell"`
	Taste          int       `json:"taste"`
	AdditionalInfo string    `json:"additional_info"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
}
