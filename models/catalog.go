package models

import "time"

// The four fixed-vocabulary catalogs referenced by Box. Names are not unique
// on purpose: the import reconciler resolves by name and keeps the last id
// when staff create duplicates.

type Department struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:200;not null" json:"name"`
	// CoverTemplate overrides the registry entry for printed cover sheets.
	CoverTemplate string    `gorm:"size:100" json:"coverTemplate,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BoxType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Warehouse struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Size      string    `gorm:"size:100" json:"size,omitempty"` // free text, e.g. meters
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Department) TableName() string { return "departments" }
func (BoxType) TableName() string    { return "box_types" }
func (Warehouse) TableName() string  { return "warehouses" }
func (Location) TableName() string   { return "locations" }
