package metrics

import (
	"context"
	"errors"
	"time"

	"itemsBack/internal/models"
	"itemsBack/internal/services"
)

// Store wraps an ItemStore and records latency and failures per operation.
// A missing row is a result, not a failure.
type Store struct {
	Next    services.ItemStore
	Metrics *Manager
}

func (s *Store) observe(op string, start time.Time, err error) {
	if errors.Is(err, models.ErrItemNotFound) {
		err = nil
	}
	s.Metrics.observeStore(op, start, err)
}

func (s *Store) GetItems(ctx context.Context) ([]models.Item, error) {
	start := time.Now()
	items, err := s.Next.GetItems(ctx)
	s.observe("list", start, err)
	return items, err
}

func (s *Store) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	start := time.Now()
	item, err := s.Next.GetItemByID(ctx, id)
	s.observe("get", start, err)
	return item, err
}

func (s *Store) CreateItem(ctx context.Context, title string, categoryID int64) (models.Item, error) {
	start := time.Now()
	item, err := s.Next.CreateItem(ctx, title, categoryID)
	s.observe("create", start, err)
	return item, err
}

func (s *Store) UpdateItemTitle(ctx context.Context, id int64, title string) (models.Item, error) {
	start := time.Now()
	item, err := s.Next.UpdateItemTitle(ctx, id, title)
	s.observe("update", start, err)
	return item, err
}

func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.Next.DeleteItem(ctx, id)
	s.observe("delete", start, err)
	return err
}
