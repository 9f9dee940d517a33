package models

// Category groups expenses. Categories are created through the API and are
// never updated or deleted.
type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// CategoryEditable represents all user configurable parameters of a Category.
type CategoryEditable struct {
	Name string `json:"name" binding:"required" example:"Groceries"` // Name of the category, unique
}
