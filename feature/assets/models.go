package assets

import "asset-audit/core/reconcile"

// Asset is a row of the registry table.
type Asset struct {
	Code        string `gorm:"column:code;primaryKey;type:varchar(64)" json:"code"`
	Location    string `gorm:"column:location;type:varchar(128);not null;index" json:"location"`
	Description string `gorm:"column:description;type:varchar(255)" json:"description"`
}

// TableName overrides the table name.
func (Asset) TableName() string {
	return "assets"
}

// ToReconcile converts the row to the engine's asset type.
func (a Asset) ToReconcile() reconcile.Asset {
	return reconcile.Asset{
		Code:        a.Code,
		Location:    a.Location,
		Description: a.Description,
	}
}
