package models

import "time"

const BoxTable = "boxes"

// Box is a physical archive box ("caja"). DisplayID is the human-facing,
// zero-padded sequential label printed on the QR sticker; it is distinct from
// the surrogate ID and unique across live rows.
type Box struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	DisplayID string `gorm:"size:20;uniqueIndex;not null" json:"displayId"`
	Code      string `gorm:"size:100" json:"code,omitempty"`

	DepartmentID uint `gorm:"index" json:"departmentId"`
	TypeID       uint `gorm:"index" json:"typeId"`
	WarehouseID  uint `gorm:"index" json:"warehouseId"`
	LocationID   uint `gorm:"index" json:"locationId"`

	Year        string `gorm:"size:100" json:"year"` // free text, may span ranges ("2019-2023")
	Observation string `json:"observation,omitempty"`
	Description string `json:"description,omitempty"`
	Shelf       string `gorm:"size:100" json:"shelf"`
	Row         string `gorm:"size:100" json:"row"`
	Column      string `gorm:"size:100" json:"column"`

	QRPath string `gorm:"size:255" json:"qrPath"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Box) TableName() string { return BoxTable }

// BoxRow is the joined read view: catalog ids resolved to names. A dangling
// reference (catalog row deleted after the box was created) resolves to "".
type BoxRow struct {
	ID          uint   `json:"id"`
	DisplayID   string `json:"displayId"`
	Code        string `json:"code,omitempty"`
	Department  string `json:"department"`
	Year        string `json:"year"`
	Type        string `json:"type"`
	Observation string `json:"observation,omitempty"`
	Description string `json:"description,omitempty"`
	Warehouse   string `json:"warehouse"`
	Location    string `json:"location"`
	Shelf       string `json:"shelf"`
	Row         string `json:"row"`
	Column      string `json:"column"`
	QRPath      string `json:"qrPath"`

	DepartmentID uint `json:"departmentId"`
	TypeID       uint `json:"typeId"`
	WarehouseID  uint `json:"warehouseId"`
	LocationID   uint `json:"locationId"`
}
