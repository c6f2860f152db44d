package services

import (
	"context"

	"dinein/db"
	"dinein/models"
)

// ListDishesByCategory returns the category's dishes in id order. The
// category id is not checked for existence; an unknown id simply yields an
// empty list.
func ListDishesByCategory(ctx context.Context, categoryID int64) ([]models.Dish, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, image_url, price, category_id FROM dishes
		WHERE category_id = $1
		ORDER BY id`,
		categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []models.Dish{}
	for rows.Next() {
		var d models.Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.ImageURL, &d.Price, &d.CategoryID); err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func CreateDish(ctx context.Context, name, imageURL string, price, categoryID int64) (*models.Dish, error) {
	var d models.Dish
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO dishes (name, image_url, price, category_id) VALUES ($1, $2, $3, $4)
		RETURNING id, name, image_url, price, category_id`,
		name, imageURL, price, categoryID,
	).Scan(&d.ID, &d.Name, &d.ImageURL, &d.Price, &d.CategoryID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
