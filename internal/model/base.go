package model

// BaseModel carries the integer identity shared by every table
type BaseModel struct {
	ID uint `gorm:"primaryKey" json:"id"`
}

// SoftDelete marks a row as hidden. Rows carrying it are never physically removed
// so that stock history stays intact.
type SoftDelete struct {
	Deleted bool `gorm:"not null;default:false;index" json:"deleted"`
}
