package models

// Category is a menu grouping shown on the dine-in landing page.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Dish is a purchasable menu item belonging to exactly one category.
// Price is kept in the smallest currency unit so totals stay integral.
type Dish struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
	Price      int64  `json:"price"`
	CategoryID int64  `json:"category_id"`
}

// Customer holds the contact details captured by the place-order flow.
type Customer struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
}
