package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/grocery-list/internal/domain/entity"
	repo "github.com/oksasatya/grocery-list/internal/domain/repository"
)

type Service struct {
	Repo   repo.GroceryRepository
	Logger *logrus.Logger
}

func NewService(repo repo.GroceryRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Logger: logger}
}

// ItemInput is an unvalidated list item as received from a caller.
type ItemInput struct {
	Name     string
	Category string
	Amount   string
}

func (in ItemInput) build() (entity.ListItem, error) {
	return entity.NewListItem(in.Name, entity.ListItemOptions{Category: in.Category, Amount: in.Amount})
}

func (s *Service) CreateUser(ctx context.Context, name, email string) (*entity.User, error) {
	u, err := entity.NewUser(name, email)
	if err != nil {
		return nil, err
	}
	created, err := s.Repo.AddUser(ctx, u)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("name", name).Error("add user failed")
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) FindUser(ctx context.Context, name string) (*entity.User, error) {
	return s.Repo.GetUserByName(ctx, name)
}

func (s *Service) CreateStore(ctx context.Context, name string, categories []string) (*entity.Store, error) {
	st, err := entity.NewStore(name, entity.StoreOptions{Categories: categories})
	if err != nil {
		return nil, err
	}
	return s.Repo.AddStore(ctx, st)
}

func (s *Service) CreateList(ctx context.Context, name, userID string, items []ItemInput) (*entity.List, error) {
	built := make([]entity.ListItem, 0, len(items))
	for i, in := range items {
		it, err := in.build()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		built = append(built, it)
	}
	l, err := entity.NewList(name, userID, entity.ListOptions{Items: built})
	if err != nil {
		return nil, err
	}
	return s.Repo.AddList(ctx, l)
}

// AddListItem appends one item to an existing list. Concurrent appends to the
// same list are last-write-wins.
func (s *Service) AddListItem(ctx context.Context, listID string, in ItemInput) (*entity.List, error) {
	it, err := in.build()
	if err != nil {
		return nil, err
	}
	l, err := s.Repo.AddListItem(ctx, listID, it)
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("list_id", listID).Warn("add list item failed")
	}
	return l, err
}

// ListsForUser collects the user's lists. Records that could not be read are
// logged and skipped; the first of them is returned alongside the lists.
func (s *Service) ListsForUser(ctx context.Context, userID string) ([]entity.List, error) {
	seq, err := s.Repo.GetListsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var (
		out      []entity.List
		firstErr error
	)
	for l, err := range seq {
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("user_id", userID).Warn("skipping unreadable list")
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, l)
	}
	return out, firstErr
}
