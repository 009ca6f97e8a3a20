package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"itemsBack/internal/models"
)

const itemColumns = `id, title, category_id, created_at, updated_at`

type ItemRepository struct {
	DB      *sql.DB
	Dialect Dialect
	// Now defaults to time.Now.
	Now func() time.Time
}

func (r *ItemRepository) now() time.Time {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return now().UTC().Truncate(time.Second)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	err := row.Scan(&item.ID, &item.Title, &item.CategoryID,
		timestamp{dst: &item.CreatedAt}, timestamp{dst: &item.UpdatedAt})
	return item, err
}

func (r *ItemRepository) GetItems(ctx context.Context) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+itemColumns+` FROM items`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	query := r.Dialect.rebind(`SELECT ` + itemColumns + ` FROM items WHERE id = ?`)
	item, err := scanItem(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, title string, categoryID int64) (models.Item, error) {
	now := r.now()

	if r.Dialect.supportsReturning() {
		query := r.Dialect.rebind(`INSERT INTO items (title, category_id, created_at, updated_at)
			VALUES (?, ?, ?, ?) RETURNING ` + itemColumns)
		item, err := scanItem(r.DB.QueryRowContext(ctx, query, title, categoryID, now, now))
		if err != nil {
			return models.Item{}, fmt.Errorf("create item: %w", err)
		}
		return item, nil
	}

	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO items (title, category_id, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		title, categoryID, now, now)
	if err != nil {
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Item{}, fmt.Errorf("create item: last insert id: %w", err)
	}
	return models.Item{
		ID:         id,
		Title:      title,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// UpdateItemTitle sets title and updated_at only; category_id and created_at are never written.
func (r *ItemRepository) UpdateItemTitle(ctx context.Context, id int64, title string) (models.Item, error) {
	now := r.now()

	if r.Dialect.supportsReturning() {
		query := r.Dialect.rebind(`UPDATE items SET title = ?, updated_at = ? WHERE id = ? RETURNING ` + itemColumns)
		item, err := scanItem(r.DB.QueryRowContext(ctx, query, title, now, id))
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, models.ErrItemNotFound
		}
		if err != nil {
			return models.Item{}, fmt.Errorf("update item %d: %w", id, err)
		}
		return item, nil
	}

	if _, err := r.DB.ExecContext(ctx, `UPDATE items SET title = ?, updated_at = ? WHERE id = ?`, title, now, id); err != nil {
		return models.Item{}, fmt.Errorf("update item %d: %w", id, err)
	}
	// MySQL reports zero affected rows when nothing changed, so existence is read back.
	return r.GetItemByID(ctx, id)
}

// DeleteItem is idempotent: a missing row is not an error.
func (r *ItemRepository) DeleteItem(ctx context.Context, id int64) error {
	query := r.Dialect.rebind(`DELETE FROM items WHERE id = ?`)
	if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	return nil
}
