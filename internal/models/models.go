package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the fixed set of shopping item categories.
type Category string

const (
	CategoryFruits     Category = "fruits"
	CategoryVegetables Category = "vegetables"
	CategoryMeats      Category = "meats"
	CategoryDairy      Category = "dairy"
	CategoryBakery     Category = "bakery"
	CategoryCleaning   Category = "cleaning"
	CategoryHygiene    Category = "hygiene"
	CategoryBeverages  Category = "beverages"
	CategoryFrozen     Category = "frozen"
	CategoryOther      Category = "other"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryFruits,
	CategoryVegetables,
	CategoryMeats,
	CategoryDairy,
	CategoryBakery,
	CategoryCleaning,
	CategoryHygiene,
	CategoryBeverages,
	CategoryFrozen,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Unit represents the measurement unit of an item quantity.
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitEach       Unit = "un"
	UnitDozen      Unit = "dz"
	UnitPackage    Unit = "pct"
)

// ListStatus represents the lifecycle state of a shopping list.
// Lists move strictly forward: planning -> shopping -> completed.
type ListStatus string

const (
	StatusPlanning  ListStatus = "planning"
	StatusShopping  ListStatus = "shopping"
	StatusCompleted ListStatus = "completed"
)

// ShoppingList represents a named, user-owned shopping list.
// EstimatedTotalCents and ActualTotalCents are denormalized caches of the
// item sums; the engine rewrites them on every item mutation and never
// trusts them over a fresh recomputation.
type ShoppingList struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	Name                string         `gorm:"not null;size:100" json:"name" binding:"required,min=1,max=100"`
	Status              ListStatus     `gorm:"type:varchar(20);not null;default:'planning';index" json:"status"`
	EstimatedTotalCents int64          `gorm:"not null;default:0" json:"estimatedTotalCents"`
	ActualTotalCents    int64          `gorm:"not null;default:0" json:"actualTotalCents"`
	CompletedAt         *time.Time     `gorm:"type:timestamp" json:"completedAt,omitempty"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
	Items               []ShoppingItem `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook to generate UUID if not set
func (l *ShoppingList) BeforeCreate(_ *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// ShoppingItem represents a purchasable entry within a list.
// ActualPriceCents is set only once the item has been purchased with a
// recorded price; an item may be purchased without one, in which case it
// contributes zero to the actual total.
type ShoppingItem struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ListID              uuid.UUID      `gorm:"type:uuid;not null;index" json:"listId"`
	Name                string         `gorm:"not null;size:200" json:"name" binding:"required,min=1,max=200"`
	Category            Category       `gorm:"type:varchar(20);not null;default:'other';index" json:"category"`
	Quantity            float64        `gorm:"not null;default:1" json:"quantity"`
	Unit                Unit           `gorm:"type:varchar(5);not null;default:'un'" json:"unit"`
	EstimatedPriceCents int64          `gorm:"not null;default:0" json:"estimatedPriceCents"`
	ActualPriceCents    *int64         `json:"actualPriceCents,omitempty"`
	IsPurchased         bool           `gorm:"default:false;index" json:"isPurchased"`
	Notes               string         `gorm:"size:500" json:"notes,omitempty"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook to generate UUID if not set
func (i *ShoppingItem) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// CreateListRequest represents the request to create a new shopping list
type CreateListRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateListRequest represents a partial update of a shopping list.
// Status, CompletedAt and the cached totals are engine-driven fields: they
// are never bound from a client payload, only set by lifecycle transitions
// and the totals cache rewrite.
type UpdateListRequest struct {
	Name                *string     `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Status              *ListStatus `json:"-"`
	CompletedAt         *time.Time  `json:"-"`
	EstimatedTotalCents *int64      `json:"-"`
	ActualTotalCents    *int64      `json:"-"`
}

// CreateItemRequest represents the request to add an item to a list.
// Only the name is required; omitted fields take the documented defaults
// (category other, quantity 1, unit un, estimated price 0).
type CreateItemRequest struct {
	Name                string    `json:"name" binding:"required,min=1,max=200"`
	Category            *Category `json:"category,omitempty" binding:"omitempty,oneof=fruits vegetables meats dairy bakery cleaning hygiene beverages frozen other"`
	Quantity            *float64  `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	Unit                *Unit     `json:"unit,omitempty" binding:"omitempty,oneof=kg g l ml un dz pct"`
	EstimatedPriceCents *int64    `json:"estimatedPriceCents,omitempty" binding:"omitempty,gte=0"`
	Notes               *string   `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// UpdateItemRequest represents a partial update of an item. Setting
// ActualPriceCents does not toggle IsPurchased; the purchased flag changes
// only when explicitly supplied.
type UpdateItemRequest struct {
	Name                *string   `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Category            *Category `json:"category,omitempty" binding:"omitempty,oneof=fruits vegetables meats dairy bakery cleaning hygiene beverages frozen other"`
	Quantity            *float64  `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	Unit                *Unit     `json:"unit,omitempty" binding:"omitempty,oneof=kg g l ml un dz pct"`
	EstimatedPriceCents *int64    `json:"estimatedPriceCents,omitempty" binding:"omitempty,gte=0"`
	ActualPriceCents    *int64    `json:"actualPriceCents,omitempty" binding:"omitempty,gte=0"`
	IsPurchased         *bool     `json:"isPurchased,omitempty"`
	Notes               *string   `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
