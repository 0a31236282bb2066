package models

import "time"

// ImpactStat is a headline figure for the homepage, e.g. "10,000+" meals
// served. Value is a display string, not a number.
type ImpactStat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(100);not null" json:"title" validate:"required,max=100"`
	Value     string    `gorm:"type:varchar(50);not null" json:"value" validate:"required,max=50"`
	Icon      string    `gorm:"type:varchar(500)" json:"icon"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ImpactStat) TableName() string {
	return "impact_stats"
}
