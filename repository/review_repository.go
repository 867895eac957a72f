package repository

import (
	"database/sql"
	"go-beer-cellar-api/model"
)

var reviewSortColumns = map[string]string{
	"rating":     "rating",
	"created_at": "created_at",
}

// IReviewRepository defines the contract for review database operations.
type IReviewRepository interface {
	CreateReview(review *model.Review) error
	GetReviewByID(id int) (*model.Review, error)
	ListReviews(params model.ListParams) ([]*model.Review, error)
	ListReviewsByBeer(beerID int, params model.ListParams) ([]*model.Review, error)
	ListReviewsByUser(userID int, params model.ListParams) ([]*model.Review, error)
	UpdateReview(review *model.Review) error
	DeleteReview(id int) error
}

type ReviewRepository struct {
	DB *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) CreateReview(review *model.Review) error {
	query := `INSERT INTO reviews (beer_id, user_id, rating, smell, taste, additional_info, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	return r.DB.QueryRow(query, review.BeerID, review.UserID, review.Rating, review.Smell,
		review.Taste, review.AdditionalInfo, review.Location).Scan(&review.ID, &review.CreatedAt)
}

func (r *ReviewRepository) GetReviewByID(id int) (*model.Review, error) {
	review := &model.Review{}
	query := `SELECT id, beer_id, user_id, rating, smell, taste, additional_info, location, created_at
		FROM reviews WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&review.ID, &review.BeerID, &review.UserID, &review.Rating,
		&review.Smell, &review.Taste, &review.AdditionalInfo, &review.Location, &review.CreatedAt)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (r *ReviewRepository) ListReviews(params model.ListParams) ([]*model.Review, error) {
	query := `SELECT id, beer_id, user_id, rating, smell, taste, additional_info, location, created_at
		FROM reviews ORDER BY ` + sortColumn(reviewSortColumns, params.SortBy) + ` ` + sortOrder(params.Order) +
		` LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(query, params.Size, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func (r *ReviewRepository) ListReviewsByBeer(beerID int, params model.ListParams) ([]*model.Review, error) {
	query := `SELECT id, beer_id, user_id, rating, smell, taste, additional_info, location, created_at
		FROM reviews WHERE beer_id = $1 ORDER BY created_at ` + sortOrder(params.Order) + ` LIMIT $2 OFFSET $3`
	rows, err := r.DB.Query(query, beerID, params.Size, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func (r *ReviewRepository) ListReviewsByUser(userID int, params model.ListParams) ([]*model.Review, error) {
	query := `SELECT id, beer_id, user_id, rating, smell, taste, additional_info, location, created_at
		FROM reviews WHERE user_id = $1 ORDER BY created_at ` + sortOrder(params.Order) + ` LIMIT $2 OFFSET $3`
	rows, err := r.DB.Query(query, userID, params.Size, params.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func (r *ReviewRepository) UpdateReview(review *model.Review) error {
	query := `UPDATE reviews SET rating = $1, smell = $2, taste = $3, additional_info = $4, location = $5
		WHERE id = $6`
	result, err := r.DB.Exec(query, review.Rating, review.Smell, review.Taste,
		review.AdditionalInfo, review.Location, review.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *ReviewRepository) DeleteReview(id int) error {
	result, err := r.DB.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func scanReviews(rows *sql.Rows) ([]*model.Review, error) {
	reviews := []*model.Review{}
	for rows.Next() {
		review := &model.Review{}
		if err := rows.Scan(&review.ID, &review.BeerID, &review.UserID, &review.Rating,
			&review.Smell, &review.Taste, &review.AdditionalInfo, &review.Location, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
