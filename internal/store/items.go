package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/najdeno/najdeno/internal/model"
)

// CreateItem inserts a reported item and returns the stored row.
func CreateItem(ctx context.Context, db *sql.DB, name, description, tags, location string) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (item_name, description, tags, location) VALUES (?, ?, ?, ?)`,
		name, description, tags, location,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if no such item exists.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	var description, tags, photoMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, item_name, description, tags, location, photo_mime, created_at
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &description, &tags, &item.Location, &photoMime, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.Description = description.String
	item.Tags = tags.String
	item.PhotoMime = photoMime.String
	return item, nil
}

// ItemExists reports whether an item with the exact (name, location,
// description) triple is already stored. The check is not atomic with a
// following insert, so concurrent reports of the same item can still slip
// past it.
func ItemExists(ctx context.Context, db *sql.DB, name, location, description string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE item_name = ? AND location = ? AND description = ?`,
		name, location, description,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking for existing item: %w", err)
	}
	return count > 0, nil
}

// SearchItems returns items where the query appears as a case-insensitive
// substring of the name, description, tags, or location. Results come back
// in insertion order, unranked.
func SearchItems(ctx context.Context, db *sql.DB, query string) ([]model.Item, error) {
	pattern := "%" + query + "%"
	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT id, item_name, description, tags, location, photo_mime, created_at
		 FROM items
		 WHERE item_name LIKE ? OR description LIKE ? OR tags LIKE ? OR location LIKE ?`,
		pattern, pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var description, tags, photoMime sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description, &tags, &item.Location, &photoMime, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.Description = description.String
		item.Tags = tags.String
		item.PhotoMime = photoMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetItemPhoto stores an item's photo data.
func SetItemPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET photo = ?, photo_mime = ? WHERE id = ?`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item photo: %w", err)
	}
	return nil
}

// GetItemPhoto returns an item's photo data and MIME type.
func GetItemPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM items WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item photo: %w", err)
	}
	return photo, mime.String, nil
}
