package schema

import "time"

// LinkedIdentity is the persisted form of a verified Audius identity linked
// to an artist. The raw provider token is stored as-is; it is trusted until
// the row is deleted on logout.
type LinkedIdentity struct {
	UserID         string    `gorm:"column:user_id;primaryKey"`
	Handle         string    `gorm:"column:handle;not null;index"`
	Name           string    `gorm:"column:name;not null"`
	ProfilePicture string    `gorm:"column:profile_picture"`
	JWT            string    `gorm:"column:jwt;not null"`
	LinkedAt       time.Time `gorm:"column:linked_at;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for LinkedIdentity
func (LinkedIdentity) TableName() string {
	return "linked_identities"
}
