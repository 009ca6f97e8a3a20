package services

import (
	"context"
	"strconv"
	"strings"

	"itemsBack/internal/models"
)

// ItemStore is the persistence contract the service depends on.
type ItemStore interface {
	GetItems(ctx context.Context) ([]models.Item, error)
	GetItemByID(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, title string, categoryID int64) (models.Item, error)
	UpdateItemTitle(ctx context.Context, id int64, title string) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type ItemService struct {
	ItemRepo ItemStore
}

// parseItemID reports false when raw cannot name any stored id.
func parseItemID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *ItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.ItemRepo.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (s *ItemService) GetItem(ctx context.Context, rawID string) (models.Item, error) {
	id, ok := parseItemID(rawID)
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	return s.ItemRepo.GetItemByID(ctx, id)
}

func (s *ItemService) CreateItem(ctx context.Context, in models.ItemInput) (models.Item, error) {
	if err := in.ValidateCreate(); err != nil {
		return models.Item{}, err
	}
	return s.ItemRepo.CreateItem(ctx, *in.Item.Title, *in.Item.CategoryID)
}

// UpdateItem changes only the title; a categoryId in the input is ignored.
func (s *ItemService) UpdateItem(ctx context.Context, rawID string, in models.ItemInput) (models.Item, error) {
	if err := in.ValidateUpdate(); err != nil {
		return models.Item{}, err
	}
	id, ok := parseItemID(rawID)
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	return s.ItemRepo.UpdateItemTitle(ctx, id, *in.Item.Title)
}

// DeleteItem succeeds whether or not the item existed.
func (s *ItemService) DeleteItem(ctx context.Context, rawID string) error {
	id, ok := parseItemID(rawID)
	if !ok {
		return nil
	}
	return s.ItemRepo.DeleteItem(ctx, id)
}
