package services

import (
	"context"
	"errors"

	"dinein/db"
	"dinein/models"

	"github.com/jackc/pgx/v5"
)

func ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, image_url FROM categories
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name, image_url FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func CreateCategory(ctx context.Context, name, imageURL string) (*models.Category, error) {
	var c models.Category
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO categories (name, image_url) VALUES ($1, $2)
		RETURNING id, name, image_url`,
		name, imageURL,
	).Scan(&c.ID, &c.Name, &c.ImageURL)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCategory removes the category; its dishes go with it via the FK
// cascade.
func DeleteCategory(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
