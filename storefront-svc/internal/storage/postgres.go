package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"otomo-storefront/storefront-svc/internal/domain"
)

// PostgresCatalog is the database-backed menu catalog, selected with
// STORAGE=postgres. It satisfies the same CatalogRepository interface as
// the memory catalog.
type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) (*PostgresCatalog, error) {
	c := &PostgresCatalog{DB: db}
	if err := c.ensureSchema(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *PostgresCatalog) ensureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			category TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			allergens TEXT[] NOT NULL DEFAULT '{}',
			popular BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range statements {
		if _, err := c.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

const itemColumns = `id, name, description, price, category, COALESCE(image, ''), available, allergens, popular`

func scanItem(row interface{ Scan(...any) error }) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var priceValue string
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &priceValue,
		&item.Category, &item.Image, &item.Available,
		pq.Array(&item.Allergens), &item.Popular); err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(priceValue)
	if err != nil {
		return nil, err
	}
	item.Price = price
	return &item, nil
}

func (c *PostgresCatalog) ListItems() ([]domain.MenuItem, error) {
	rows, err := c.DB.Query(`SELECT ` + itemColumns + ` FROM menu_items ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (c *PostgresCatalog) ListItemsByCategory(category string) ([]domain.MenuItem, error) {
	rows, err := c.DB.Query(`SELECT `+itemColumns+` FROM menu_items WHERE category = $1 ORDER BY name`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (c *PostgresCatalog) GetItem(id string) (*domain.MenuItem, error) {
	return scanItem(c.DB.QueryRow(`SELECT `+itemColumns+` FROM menu_items WHERE id = $1`, id))
}

func (c *PostgresCatalog) CreateItem(item *domain.MenuItem) error {
	_, err := c.DB.Exec(`
		INSERT INTO menu_items (id, name, description, price, category, image, available, allergens, popular)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.Name, item.Description, item.Price.String(), item.Category,
		item.Image, item.Available, pq.Array(item.Allergens), item.Popular)
	return err
}

func (c *PostgresCatalog) UpdateItem(item *domain.MenuItem) error {
	result, err := c.DB.Exec(`
		UPDATE menu_items
		SET name=$2, description=$3, price=$4, category=$5, image=$6, available=$7, allergens=$8, popular=$9
		WHERE id=$1`,
		item.ID, item.Name, item.Description, item.Price.String(), item.Category,
		item.Image, item.Available, pq.Array(item.Allergens), item.Popular)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (c *PostgresCatalog) DeleteItem(id string) (int64, error) {
	result, err := c.DB.Exec(`DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (c *PostgresCatalog) ListCategories() ([]domain.Category, error) {
	rows, err := c.DB.Query(`SELECT id, name, description, COALESCE(image, '') FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.Image); err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}
