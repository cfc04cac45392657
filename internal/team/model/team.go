package model

import "time"

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	TeamName  string    `gorm:"primaryKey;column:team_name;type:varchar(255)" json:"team_name"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"     json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"     json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
