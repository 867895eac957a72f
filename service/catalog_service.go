package service

import (
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/repository"
)

// The brewery, style and container services are thin CRUD layers over their
// repositories; constraint failures are mapped to service sentinels so the
// handlers stay free of database knowledge.

type BreweryService struct {
	repo repository.IBreweryRepository
}

func NewBreweryService(repo repository.IBreweryRepository) *BreweryService {
	return &BreweryService{repo: repo}
}

func (s *BreweryService) CreateBrewery(req model.BreweryRequest) (*model.Brewery, error) {
	brewery := &model.Brewery{Name: req.Name, City: req.City, Country: req.Country}
	if err := s.repo.CreateBrewery(brewery); err != nil {
		return nil, mapConstraintError(err)
	}
	return brewery, nil
}

func (s *BreweryService) GetBrewery(id int) (*model.Brewery, error) {
	brewery, err := s.repo.GetBreweryByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return brewery, nil
}

func (s *BreweryService) ListBreweries(params model.ListParams) ([]*model.Brewery, error) {
	return s.repo.ListBreweries(params)
}

func (s *BreweryService) UpdateBrewery(id int, req model.BreweryRequest) (*model.Brewery, error) {
	brewery := &model.Brewery{ID: id, Name: req.Name, City: req.City, Country: req.Country}
	if err := s.repo.UpdateBrewery(brewery); err != nil {
		return nil, mapConstraintError(err)
	}
	return s.GetBrewery(id)
}

func (s *BreweryService) DeleteBrewery(id int) error {
	return mapConstraintError(s.repo.DeleteBrewery(id))
}

type StyleService struct {
	repo repository.IStyleRepository
}

func NewStyleService(repo repository.IStyleRepository) *StyleService {
	return &StyleService{repo: repo}
}

func (s *StyleService) CreateStyle(req model.StyleRequest) (*model.Style, error) {
	style := &model.Style{Name: req.Name, Description: req.Description}
	if err := s.repo.CreateStyle(style); err != nil {
		return nil, mapConstraintError(err)
	}
	return style, nil
}

func (s *StyleService) GetStyle(id int) (*model.Style, error) {
	style, err := s.repo.GetStyleByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return style, nil
}

func (s *StyleService) ListStyles(params model.ListParams) ([]*model.Style, error) {
	return s.repo.ListStyles(params)
}

func (s *StyleService) UpdateStyle(id int, req model.StyleRequest) (*model.Style, error) {
	style := &model.Style{ID: id, Name: req.Name, Description: req.Description}
	if err := s.repo.UpdateStyle(style); err != nil {
		return nil, mapConstraintError(err)
	}
	return s.GetStyle(id)
}

func (s *StyleService) DeleteStyle(id int) error {
	return mapConstraintError(s.repo.DeleteStyle(id))
}

type ContainerService struct {
	repo repository.IContainerRepository
}

func NewContainerService(repo repository.IContainerRepository) *ContainerService {
	return &ContainerService{repo: repo}
}

func (s *ContainerService) CreateContainer(req model.ContainerRequest) (*model.Container, error) {
	container := &model.Container{Type: req.Type, Size: req.Size}
	if err := s.repo.CreateContainer(container); err != nil {
		return nil, mapConstraintError(err)
	}
	return container, nil
}

func (s *ContainerService) GetContainer(id int) (*model.Container, error) {
	container, err := s.repo.GetContainerByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return container, nil
}

func (s *ContainerService) ListContainers() ([]*model.Container, error) {
	return s.repo.ListContainers()
}

func (s *ContainerService) UpdateContainer(id int, req model.ContainerRequest) (*model.Container, error) {
	container := &model.Container{ID: id, Type: req.Type, Size: req.Size}
	if err := s.repo.UpdateContainer(container); err != nil {
		return nil, mapConstraintError(err)
	}
	return s.GetContainer(id)
}

func (s *ContainerService) DeleteContainer(id int) error {
	return mapConstraintError(s.repo.DeleteContainer(id))
}
