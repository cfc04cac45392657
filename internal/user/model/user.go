package model

import "time"

// User represents a user entity in the system.
// Matches the users table schema. The column default for is_active lives in the
// migration only: a gorm default would swallow an explicit false on insert.
type User struct {
	UserID    string    `gorm:"primaryKey;column:user_id;type:varchar(255)"                                       json:"user_id"`
	Username  string    `gorm:"column:username;type:varchar(255);not null"                                        json:"username"`
	TeamName  string    `gorm:"column:team_name;type:varchar(255);not null;index:idx_users_team_active,priority:1" json:"team_name"`
	IsActive  bool      `gorm:"column:is_active;not null;index:idx_users_team_active,priority:2"                  json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"                                         json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"                                         json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
