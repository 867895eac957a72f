package service

import (
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/repository"
)

// ReviewService handles user reviews. Writes invalidate the stats cache.
type ReviewService struct {
	repo  repository.IReviewRepository
	cache CacheClient
}

func NewReviewService(repo repository.IReviewRepository, cache CacheClient) *ReviewService {
	return &ReviewService{repo: repo, cache: cache}
}

func (s *ReviewService) CreateReview(userID int, req model.ReviewRequest) (*model.Review, error) {
	review := &model.Review{
		BeerID:         req.BeerID,
		UserID:         userID,
		Rating:         req.Rating,
		Smell:          req.Smell,
		Taste:          req.Taste,
		AdditionalInfo: req.AdditionalInfo,
		Location:       req.Location,
	}
	if err := s.repo.CreateReview(review); err != nil {
		return nil, mapConstraintError(err)
	}
	invalidateStatsCache(s.cache)
	return review, nil
}

func (s *ReviewService) GetReview(id int) (*model.Review, error) {
	review, err := s.repo.GetReviewByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return review, nil
}

func (s *ReviewService) ListReviews(params model.ListParams) ([]*model.Review, error) {
	return s.repo.ListReviews(params)
}

func (s *ReviewService) ListReviewsByBeer(beerID int, params model.ListParams) ([]*model.Review, error) {
	return s.repo.ListReviewsByBeer(beerID, params)
}

func (s *ReviewService) ListReviewsByUser(userID int, params model.ListParams) ([]*model.Review, error) {
	return s.repo.ListReviewsByUser(userID, params)
}

// UpdateReview replaces the review content. The beer and author of an
// existing review never change.
func (s *ReviewService) UpdateReview(id int, req model.ReviewRequest) (*model.Review, error) {
	review := &model.Review{
		ID:             id,
		Rating:         req.Rating,
		Smell:          req.Smell,
		Taste:          req.Taste,
		AdditionalInfo: req.AdditionalInfo,
		Location:       req.Location,
	}
	if err := s.repo.UpdateReview(review); err != nil {
		return nil, mapNotFound(err)
	}
	invalidateStatsCache(s.cache)
	return s.GetReview(id)
}

func (s *ReviewService) DeleteReview(id int) error {
	if err := s.repo.DeleteReview(id); err != nil {
		return mapNotFound(err)
	}
	invalidateStatsCache(s.cache)
	return nil
}
