package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the wire format for every timestamp: UTC, whole seconds, literal Z.
const TimestampLayout = "2006-01-02T15:04:05Z"

type Item struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	CategoryID int64     `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FormatTimestamp renders t in TimestampLayout, dropping any sub-second part.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}

func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         int64  `json:"id"`
		Title      string `json:"title"`
		CategoryID int64  `json:"categoryId"`
		CreatedAt  string `json:"createdAt"`
		UpdatedAt  string `json:"updatedAt"`
	}{
		ID:         i.ID,
		Title:      i.Title,
		CategoryID: i.CategoryID,
		CreatedAt:  FormatTimestamp(i.CreatedAt),
		UpdatedAt:  FormatTimestamp(i.UpdatedAt),
	})
}

// ItemEnvelope is the single-item response body.
type ItemEnvelope struct {
	Item Item `json:"item"`
}

// ItemsEnvelope is the list response body.
type ItemsEnvelope struct {
	Items []Item `json:"items"`
}

// ItemInput is the request body for create and update. Pointer fields keep
// "absent" apart from zero values.
type ItemInput struct {
	Item *ItemFields `json:"item"`
}

type ItemFields struct {
	Title      *string `json:"title"`
	CategoryID *int64  `json:"categoryId"`
}

// ValidateCreate checks that title and categoryId are present.
func (in ItemInput) ValidateCreate() error {
	if in.Item == nil {
		return fmt.Errorf("%w: item is required", ErrInvalidItem)
	}
	if in.Item.Title == nil {
		return fmt.Errorf("%w: item.title is required", ErrInvalidItem)
	}
	if in.Item.CategoryID == nil {
		return fmt.Errorf("%w: item.categoryId is required", ErrInvalidItem)
	}
	return nil
}

// ValidateUpdate checks that title is present; categoryId is ignored.
func (in ItemInput) ValidateUpdate() error {
	if in.Item == nil {
		return fmt.Errorf("%w: item is required", ErrInvalidItem)
	}
	if in.Item.Title == nil {
		return fmt.Errorf("%w: item.title is required", ErrInvalidItem)
	}
	return nil
}
