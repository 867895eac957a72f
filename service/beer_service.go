package service

import (
	"database/sql"
	"errors"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/repository"

	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

// BeerService handles beer catalogue logic. Writes invalidate the stats
// cache because every aggregate is computed over beers and their reviews.
type BeerService struct {
	repo  repository.IBeerRepository
	cache CacheClient
}

func NewBeerService(repo repository.IBeerRepository, cache CacheClient) *BeerService {
	return &BeerService{repo: repo, cache: cache}
}

func (s *BeerService) CreateBeer(req model.BeerRequest) (*model.Beer, error) {
	beer := &model.Beer{
		Name:        req.Name,
		BreweryID:   req.BreweryID,
		StyleID:     req.StyleID,
		ABV:         req.ABV,
		IBU:         req.IBU,
		Description: req.Description,
	}
	if err := s.repo.CreateBeer(beer); err != nil {
		return nil, mapConstraintError(err)
	}
	invalidateStatsCache(s.cache)
	return beer, nil
}

func (s *BeerService) GetBeer(id int) (*model.Beer, error) {
	beer, err := s.repo.GetBeerByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return beer, nil
}

func (s *BeerService) ListBeers(params model.ListParams) ([]*model.Beer, error) {
	return s.repo.ListBeers(params)
}

func (s *BeerService) SearchBeers(query string, params model.ListParams) ([]*model.Beer, error) {
	return s.repo.SearchBeers(query, params)
}

func (s *BeerService) UpdateBeer(id int, req model.BeerRequest) (*model.Beer, error) {
	beer := &model.Beer{
		ID:          id,
		Name:        req.Name,
		BreweryID:   req.BreweryID,
		StyleID:     req.StyleID,
		ABV:         req.ABV,
		IBU:         req.IBU,
		Description: req.Description,
	}
	if err := s.repo.UpdateBeer(beer); err != nil {
		return nil, mapConstraintError(err)
	}
	invalidateStatsCache(s.cache)
	return s.GetBeer(id)
}

func (s *BeerService) DeleteBeer(id int) error {
	if err := s.repo.DeleteBeer(id); err != nil {
		return mapNotFound(err)
	}
	invalidateStatsCache(s.cache)
	return nil
}

// mapNotFound translates sql.ErrNoRows into the service-level sentinel.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// mapConstraintError translates database constraint failures: a foreign key
// violation means a referenced resource does not exist, a unique violation
// means the resource already exists.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case foreignKeyViolation:
			return ErrNotFound
		case uniqueViolation:
			return ErrAlreadyExists
		}
	}
	return mapNotFound(err)
}
