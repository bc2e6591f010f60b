package upload

import "time"

// Image is one successfully published upload. A row only ever exists for an
// upload the hosting API accepted; failed or partial uploads leave no row.
// Rows are immutable after creation; the only mutation is deletion.
type Image struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OriginalName string    `gorm:"column:original_name" json:"originalName"`
	URL          string    `gorm:"column:url" json:"url"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Image) TableName() string { return "images" }
