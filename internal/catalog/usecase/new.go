package usecase

import (
	"practice-catalog/internal/catalog"
	"practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/catalog/uow"
	"practice-catalog/internal/model"
	"practice-catalog/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo       repository.Repository
	uow        *uow.Executor
	users      catalog.UserResolver
	strategies map[model.ItemType]strategy
	l          log.Logger
}

// New creates a new catalog UseCase implementation. The strategy set is
// closed: one entry per supported item type.
func New(repo repository.Repository, executor *uow.Executor, users catalog.UserResolver, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		uow:   executor,
		users: users,
		strategies: map[model.ItemType]strategy{
			model.ItemTypeService: serviceStrategy{},
			model.ItemTypeLab:     labStrategy{},
			model.ItemTypeProduct: productStrategy{},
		},
		l: l,
	}
}
