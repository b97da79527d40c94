package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jlhu/perdiem/internal/flexdate"
	"github.com/jlhu/perdiem/internal/model"
)

// ItemParams carries the writable item fields. Date fields are the raw
// user text; they are stored verbatim and normalized on load.
type ItemParams struct {
	Name      string
	Category  string
	Notes     string
	Price     decimal.Decimal
	SoldPrice decimal.NullDecimal

	PurchaseDate   string
	WarrantyDate   string
	RetirementDate string
}

const itemColumns = `id, name, category, notes, price, sold_price,
	purchase_date, warranty_date, retirement_date, image_mime,
	created_at, updated_at, deleted_at`

// CreateItem creates a new item.
func CreateItem(ctx context.Context, db *sql.DB, p ItemParams) (*model.Item, error) {
	var sold any
	if p.SoldPrice.Valid {
		sold = p.SoldPrice.Decimal.String()
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (name, category, notes, price, sold_price,
		                    purchase_date, warranty_date, retirement_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Category, p.Notes, p.Price.String(), sold,
		p.PurchaseDate, p.WarrantyDate, p.RetirementDate,
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

// GetItem returns an item by ID, including soft-deleted items.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all non-deleted items, optionally filtered by
// category, ordered by name.
func ListItems(ctx context.Context, db *sql.DB, category string) ([]model.Item, error) {
	var rows *sql.Rows
	var err error

	if category != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT `+itemColumns+` FROM items
			 WHERE deleted_at IS NULL AND category = ? ORDER BY name`, category,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT `+itemColumns+` FROM items
			 WHERE deleted_at IS NULL ORDER BY name`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateItem updates an item's fields.
func UpdateItem(ctx context.Context, db *sql.DB, id int64, p ItemParams) error {
	var sold any
	if p.SoldPrice.Valid {
		sold = p.SoldPrice.Decimal.String()
	}

	_, err := db.ExecContext(ctx,
		`UPDATE items SET name = ?, category = ?, notes = ?, price = ?,
		                  sold_price = ?, purchase_date = ?, warranty_date = ?,
		                  retirement_date = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		p.Name, p.Category, p.Notes, p.Price.String(), sold,
		p.PurchaseDate, p.WarrantyDate, p.RetirementDate, id,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

// DeleteItem soft-deletes an item.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// SetItemImage stores an item's photo.
func SetItemImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return nil
}

// GetItemImage returns an item's photo data and MIME type.
func GetItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanItem reads one item row, parsing money columns into decimals and
// date columns through flexdate. This is the single place raw stored
// text becomes normalized values.
func scanItem(s scanner) (*model.Item, error) {
	item := &model.Item{}
	var category, notes, soldPrice, imageMime sql.NullString
	var purchase, warranty, retirement sql.NullString
	var price string

	err := s.Scan(&item.ID, &item.Name, &category, &notes, &price, &soldPrice,
		&purchase, &warranty, &retirement, &imageMime,
		&item.CreatedAt, &item.UpdatedAt, &item.DeletedAt)
	if err != nil {
		return nil, err
	}

	item.Category = category.String
	item.Notes = notes.String
	item.ImageMime = imageMime.String

	item.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing price %q: %w", price, err)
	}
	if soldPrice.Valid {
		d, err := decimal.NewFromString(soldPrice.String)
		if err != nil {
			return nil, fmt.Errorf("parsing sold price %q: %w", soldPrice.String, err)
		}
		item.SoldPrice = decimal.NewNullDecimal(d)
	}

	item.PurchaseDate = flexdate.ParseString(purchase.String)
	item.WarrantyDate = flexdate.ParseString(warranty.String)
	item.RetirementDate = flexdate.ParseString(retirement.String)

	return item, nil
}
