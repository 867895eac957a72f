package model

// Validated request payloads. Each struct is the whole schema for one
// endpoint: validation either accepts the complete object or rejects it.

// RegisterRequest creates a new user. Only admins may register users, so the
// role is part of the payload.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,oneof=admin viewer"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,min=8"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type BreweryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	City    string `json:"city" validate:"max=100"`
	Country string `json:"country" validate:"max=100"`
}

type StyleRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type BeerRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	BreweryID   int     `json:"brewery_id" validate:"required,gt=0"`
	StyleID     int     `json:"style_id" validate:"required,gt=0"`
	ABV         float64 `json:"abv" validate:"gte=0,lte=100"`
	IBU         int     `json:"ibu" validate:"gte=0,lte=120"`
	Description string  `json:"description" validate:"max=1000"`
}

type ContainerRequest struct {
	Type ContainerType `json:"type" validate:"required,oneof=bottle can draft"`
	Size string        `json:"size" validate:"required,containersize"`
}

type StorageRequest struct {
	BeerID      int    `json:"beer_id" validate:"required,gt=0"`
	ContainerID int    `json:"container_id" validate:"required,gt=0"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	BestBefore  string `json:"best_before" validate:"required,datetime=2006-01-02"`
}

// StorageAdjustRequest consumes bottles from a storage entry.
type StorageAdjustRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type ReviewRequest struct {
	BeerID         int    `json:"beer_id" validate:"required,gt=0"`
	Rating         int    `json:"rating" validate:"required,min=1,max=10"`
	Smell          int    `json:"smell" validate:"required,min=1,max=10"`
	Taste          int    `json:"taste" validate:"required,min=1,max=10"`
	AdditionalInfo string `json:"additional_info" validate:"max=1000"`
	Location       string `json:"location" validate:"max=100"`
}

// ListParams are the pagination and ordering query parameters shared by the
// listing endpoints. SortBy is checked against a per-resource allow-list by
// the handler on top of this schema.
type ListParams struct {
	Size   int    `validate:"min=1,max=50"`
	Skip   int    `validate:"min=0"`
	Order  string `validate:"oneof=asc desc"`
	SortBy string `validate:"omitempty,min=1,max=30"`
}

// SearchParams is the free-text search query for the beer listing.
type SearchParams struct {
	Query string `validate:"required,min=3,max=100"`
}
