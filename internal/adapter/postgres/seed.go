package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS menu_categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		sort_order INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id BIGSERIAL PRIMARY KEY,
		category_id BIGINT NOT NULL REFERENCES menu_categories(id),
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		image_url TEXT,
		visible BOOLEAN NOT NULL DEFAULT true,
		sort_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		customer_email TEXT,
		type TEXT NOT NULL,
		delivery_address TEXT,
		payment_method TEXT NOT NULL,
		total NUMERIC(10,2) NOT NULL CHECK (total >= 0),
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_lines (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		menu_item_id BIGINT NOT NULL REFERENCES menu_items(id),
		quantity INT NOT NULL CHECK (quantity >= 1),
		price_at_order NUMERIC(10,2) NOT NULL,
		name_at_order TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_status_log (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		status TEXT NOT NULL,
		changed_by TEXT NOT NULL,
		changed_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS business_info (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		phone TEXT NOT NULL,
		hours TEXT NOT NULL,
		logo_url TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_order_lines_order_id ON order_lines(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items(category_id)`,
}

type seedItem struct {
	category    string
	name        string
	description string
	price       string
	imageURL    string
	sortOrder   int
}

var seedCategories = []struct {
	name      string
	sortOrder int
}{
	{"Appetizers", 1},
	{"Main Courses", 2},
	{"Desserts", 3},
	{"Beverages", 4},
}

var seedItems = []seedItem{
	{"Appetizers", "Buffalo Wings", "Crispy chicken wings tossed in our signature buffalo sauce, served with celery and blue cheese dip", "12.99", "https://images.unsplash.com/photo-1567620832903-9fc6debc209f?w=400", 1},
	{"Appetizers", "Mozzarella Sticks", "Golden fried mozzarella sticks served with marinara sauce", "8.99", "https://images.unsplash.com/photo-1548030084-b2a8803f3a41?w=400", 2},
	{"Appetizers", "Loaded Nachos", "Crispy tortilla chips topped with cheese, jalapenos, sour cream, and guacamole", "10.99", "https://images.unsplash.com/photo-1513456852971-30c0b8199d4d?w=400", 3},
	{"Main Courses", "Classic Burger", "Juicy beef patty with lettuce, tomato, onion, and our special sauce on a brioche bun", "14.99", "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400", 1},
	{"Main Courses", "Grilled Chicken Caesar", "Grilled chicken breast over romaine lettuce with parmesan cheese and caesar dressing", "13.99", "https://images.unsplash.com/photo-1551248429-40975aa4de74?w=400", 2},
	{"Main Courses", "Fish & Chips", "Beer-battered cod with crispy fries and coleslaw", "16.99", "https://images.unsplash.com/photo-1579952363873-27d3bfad9c0d?w=400", 3},
	{"Desserts", "Chocolate Lava Cake", "Warm chocolate cake with a molten center, served with vanilla ice cream", "7.99", "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=400", 1},
	{"Desserts", "New York Cheesecake", "Classic creamy cheesecake with a graham cracker crust", "6.99", "https://images.unsplash.com/photo-1533134242443-d4fd215305ad?w=400", 2},
	{"Beverages", "Fresh Lemonade", "House-made lemonade with fresh squeezed lemons", "3.99", "https://images.unsplash.com/photo-1621263764928-df1444c5e859?w=400", 1},
	{"Beverages", "Coffee", "Freshly brewed house blend", "2.99", "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400", 2},
}

// Seed creates the schema and loads the demo catalog and venue profile.
// Safe to run more than once; demo rows are only inserted into empty tables.
func Seed(ctx context.Context, db DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_categories`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categoryIDs := make(map[string]int64, len(seedCategories))
	for _, cat := range seedCategories {
		var id int64
		err := db.QueryRow(ctx,
			`INSERT INTO menu_categories (name, sort_order) VALUES ($1, $2) RETURNING id`,
			cat.name, cat.sortOrder,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", cat.name, err)
		}
		categoryIDs[cat.name] = id
	}

	for _, item := range seedItems {
		_, err := db.Exec(ctx, `
			INSERT INTO menu_items (category_id, name, description, price, image_url, visible, sort_order)
			VALUES ($1, $2, $3, $4, $5, true, $6)
		`, categoryIDs[item.category], item.name, item.description, item.price, item.imageURL, item.sortOrder)
		if err != nil {
			return fmt.Errorf("failed to seed item %q: %w", item.name, err)
		}
	}

	_, err := db.Exec(ctx, `
		INSERT INTO business_info (name, address, phone, hours)
		VALUES ($1, $2, $3, $4)
	`, "Demo Bistro", "123 Main Street, Downtown, DC 20001", "(555) 123-4567",
		"Mon-Thu: 11:00 AM - 9:00 PM, Fri-Sat: 11:00 AM - 10:00 PM, Sun: 12:00 PM - 8:00 PM")
	if err != nil {
		return fmt.Errorf("failed to seed business info: %w", err)
	}

	return nil
}
