package model

import "time"

// ContainerType enumerates the supported packaging kinds.
type ContainerType string

const (
	ContainerBottle ContainerType = "bottle"
	ContainerCan    ContainerType = "can"
	ContainerDraft  ContainerType = "draft"
)

// Container describes a packaging variant, e.g. a 0.33 l bottle.
// Size is a fixed two-decimal litre string ("0.33", "1.00").
type Container struct {
	ID        int           `json:"id"`
	Type      ContainerType `json:"type"`
	Size      string        `json:"size"`
	CreatedAt time.Time     `json:"created_at"`
}

// Storage is a cellar entry: a quantity of one beer in one container.
type Storage struct {
	ID          int       `json:"id"`
	BeerID      int       `json:"beer_id"`
	ContainerID int       `json:"container_id"`
	Quantity    int       `json:"quantity"`
	BestBefore  time.Time `json:"best_before"`
	CreatedAt   time.Time `json:"created_at"`
}
