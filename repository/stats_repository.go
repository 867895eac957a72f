package repository

import (
	"database/sql"
	"go-beer-cellar-api/model"
)

// IStatsRepository defines the contract for aggregate statistics queries.
type IStatsRepository interface {
	GetOverallStats() (*model.OverallStats, error)
	GetBreweryStats() ([]*model.BreweryStats, error)
	GetStyleStats() ([]*model.StyleStats, error)
	GetAnnualStats() ([]*model.AnnualStats, error)
	GetRatingDistribution() ([]*model.RatingCount, error)
}

type StatsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) GetOverallStats() (*model.OverallStats, error) {
	stats := &model.OverallStats{}
	query := `SELECT
		(SELECT COUNT(*) FROM beers),
		(SELECT COUNT(*) FROM breweries),
		(SELECT COUNT(*) FROM styles),
		(SELECT COUNT(*) FROM containers),
		(SELECT COUNT(*) FROM reviews),
		(SELECT COALESCE(AVG(rating), 0) FROM reviews)`
	err := r.DB.QueryRow(query).Scan(&stats.BeerCount, &stats.BreweryCount, &stats.StyleCount,
		&stats.ContainerCount, &stats.ReviewCount, &stats.AverageRating)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *StatsRepository) GetBreweryStats() ([]*model.BreweryStats, error) {
	query := `SELECT br.id, br.name, COUNT(rv.id), COALESCE(AVG(rv.rating), 0)
		FROM breweries br
		LEFT JOIN beers b ON b.brewery_id = br.id
		LEFT JOIN reviews rv ON rv.beer_id = b.id
		GROUP BY br.id, br.name
		ORDER BY COUNT(rv.id) DESC, br.name ASC`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []*model.BreweryStats{}
	for rows.Next() {
		row := &model.BreweryStats{}
		if err := rows.Scan(&row.BreweryID, &row.BreweryName, &row.ReviewCount, &row.AverageRating); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}
	return stats, rows.Err()
}

func (r *StatsRepository) GetStyleStats() ([]*model.StyleStats, error) {
	query := `SELECT s.id, s.name, COUNT(rv.id), COALESCE(AVG(rv.rating), 0)
		FROM styles s
		LEFT JOIN beers b ON b.style_id = s.id
		LEFT JOIN reviews rv ON rv.beer_id = b.id
		GROUP BY s.id, s.name
		ORDER BY COUNT(rv.id) DESC, s.name ASC`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []*model.StyleStats{}
	for rows.Next() {
		row := &model.StyleStats{}
		if err := rows.Scan(&row.StyleID, &row.StyleName, &row.ReviewCount, &row.AverageRating); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}
	return stats, rows.Err()
}

func (r *StatsRepository) GetAnnualStats() ([]*model.AnnualStats, error) {
	query := `SELECT EXTRACT(YEAR FROM created_at)::int AS year, COUNT(*), COALESCE(AVG(rating), 0)
		FROM reviews
		GROUP BY year
		ORDER BY year DESC`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []*model.AnnualStats{}
	for rows.Next() {
		row := &model.AnnualStats{}
		if err := rows.Scan(&row.Year, &row.ReviewCount, &row.AverageRating); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}
	return stats, rows.Err()
}

func (r *StatsRepository) GetRatingDistribution() ([]*model.RatingCount, error) {
	query := `SELECT rating, COUNT(*) FROM reviews GROUP BY rating ORDER BY rating`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []*model.RatingCount{}
	for rows.Next() {
		row := &model.RatingCount{}
		if err := rows.Scan(&row.Rating, &row.Count); err != nil {
			return nil, err
		}
		counts = append(counts, row)
	}
	return counts, rows.Err()
}
