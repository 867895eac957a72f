package model

// OverallStats are the top-level catalogue counters.
type OverallStats struct {
	BeerCount      int     `json:"beer_count"`
	BreweryCount   int     `json:"brewery_count"`
	StyleCount     int     `json:"style_count"`
	ContainerCount int     `json:"container_count"`
	ReviewCount    int     `json:"review_count"`
	AverageRating  float64 `json:"average_rating"`
}

// BreweryStats aggregates review activity per brewery.
type BreweryStats struct {
	BreweryID     int     `json:"brewery_id"`
	BreweryName   string  `json:"brewery_name"`
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

// StyleStats aggregates review activity per style.
type StyleStats struct {
	StyleID       int     `json:"style_id"`
	StyleName     string  `json:"style_name"`
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

// AnnualStats aggregates review activity per calendar year.
type AnnualStats struct {
	Year          int     `json:"year"`
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

// RatingCount is one bucket of the rating distribution.
type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}
