package models

import "time"

// Lifecycle statuses of a requirement file.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// RequirementFile is an uploaded document attached to an organisation's requirement.
// Inode is captured at upload time and stays the file's identity across moves.
type RequirementFile struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	RequirementID  uint      `gorm:"column:requirement_id;index" json:"requirement_id"`
	OrganizationID uint      `gorm:"column:organization_id;index" json:"organization_id"`
	Inode          uint64    `gorm:"column:inode;index" json:"inode"`
	Filename       string    `gorm:"column:filename;type:varchar(255)" json:"filename"`
	Path           string    `gorm:"column:path;type:varchar(512);index" json:"path"`
	Status         string    `gorm:"column:status;type:varchar(32);default:pending" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (RequirementFile) TableName() string {
	return "requirement_files"
}

// ListQuery filters and pages requirement files.
type ListQuery struct {
	// PathPrefix keeps files whose path starts with it.
	PathPrefix string
	// Limit caps the page size.
	Limit int
	// Offset skips the first rows.
	Offset int
}

// ListResult is a page of requirement files.
type ListResult struct {
	Items  []RequirementFile `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
