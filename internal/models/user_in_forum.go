package models

// UserInForum holds per-(user, forum) state: a privilege rank and a follow
// flag. Absence of a row is equivalent to both fields being nil. Rows are
// created lazily by follow toggling; rank is assigned by external tooling.
type UserInForum struct {
	UserID  uint  `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	ForumID uint  `gorm:"primaryKey;autoIncrement:false" json:"forum_id"`
	Rank    *int  `json:"rank"`
	Follows *bool `json:"follows"`
}

// TableName matches the legacy schema.
func (UserInForum) TableName() string { return "user_in_forum" }
