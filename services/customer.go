package services

import (
	"context"
	"errors"

	"dinein/db"
	"dinein/models"

	"github.com/jackc/pgx/v5"
)

// CreateCustomer inserts a new row on every call; repeated submissions for
// the same mobile number produce duplicate rows, there is no upsert here.
func CreateCustomer(ctx context.Context, name, mobileNumber string) (*models.Customer, error) {
	var c models.Customer
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO customers (name, mobile_number) VALUES ($1, $2)
		RETURNING id, name, mobile_number`,
		name, mobileNumber,
	).Scan(&c.ID, &c.Name, &c.MobileNumber)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCustomerByMobile looks a customer up by exact mobile-number match.
func GetCustomerByMobile(ctx context.Context, mobileNumber string) (*models.Customer, error) {
	var c models.Customer
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name, mobile_number FROM customers WHERE mobile_number = $1`, mobileNumber,
	).Scan(&c.ID, &c.Name, &c.MobileNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
