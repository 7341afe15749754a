package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category is one of the fixed product categories.
type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFish       Category = "fish"
	CategoryFrozen     Category = "frozen"
	CategorySpices     Category = "spices"

	// CategoryAll is the filter value that matches every category. It is never
	// stored on a product.
	CategoryAll Category = "all"
)

// Categories lists the stored categories in display order.
var Categories = []Category{CategoryVegetables, CategoryFish, CategoryFrozen, CategorySpices}

// CategoryLabels holds the storefront label for each filter value.
var CategoryLabels = map[Category]string{
	CategoryAll:        "All Products",
	CategoryVegetables: "Vegetables",
	CategoryFish:       "Fresh Fish",
	CategoryFrozen:     "Frozen Food",
	CategorySpices:     "Kitchen Spices",
}

// Valid reports whether c is a stored category.
func (c Category) Valid() bool {
	switch c {
	case CategoryVegetables, CategoryFish, CategoryFrozen, CategorySpices:
		return true
	}
	return false
}

// Product is a catalog entry. Price is in whole currency units.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    Category  `gorm:"type:varchar(20);not null;index" json:"category"`
	Price       int64     `gorm:"not null;check:price >= 0" json:"price"`
	ImageURL    string    `gorm:"not null;default:''" json:"image_url"`
	Description string    `gorm:"not null;default:''" json:"description"`
	InStock     bool      `gorm:"not null;default:true" json:"in_stock"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Validate checks the invariants the store relies on.
func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if !p.Category.Valid() {
		return fmt.Errorf("invalid category %q", p.Category)
	}
	if p.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}

// ProductInput is the payload for creating a product.
type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Category    Category `json:"category" binding:"required,oneof=vegetables fish frozen spices"`
	Price       int64    `json:"price" binding:"gte=0"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	InStock     *bool    `json:"in_stock"`
}

// Product builds the record to insert; InStock defaults to true.
func (in ProductInput) Product() Product {
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	return Product{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		InStock:     inStock,
	}
}

// ProductPatch is a partial update; nil fields are left unchanged.
type ProductPatch struct {
	Name        *string   `json:"name" binding:"omitempty,min=1"`
	Category    *Category `json:"category" binding:"omitempty,oneof=vegetables fish frozen spices"`
	Price       *int64    `json:"price" binding:"omitempty,gte=0"`
	ImageURL    *string   `json:"image_url"`
	Description *string   `json:"description"`
	InStock     *bool     `json:"in_stock"`
}

// Updates returns the column updates for the set fields.
func (p ProductPatch) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Category != nil {
		updates["category"] = *p.Category
	}
	if p.Price != nil {
		updates["price"] = *p.Price
	}
	if p.ImageURL != nil {
		updates["image_url"] = *p.ImageURL
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.InStock != nil {
		updates["in_stock"] = *p.InStock
	}
	return updates
}
