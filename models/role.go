package models

type RoleValue string

const (
	RoleWriter    RoleValue = "WRITER"
	RoleModerator RoleValue = "MODERATOR"
)

// Role is a fixed enumerated value seeded at startup, never created by end users.
type Role struct {
	ID    int16     `json:"id" gorm:"primarykey;autoIncrement"`
	Value RoleValue `json:"value" gorm:"type:varchar(20);uniqueIndex;not null"`
	Users []User    `json:"users,omitempty" gorm:"foreignKey:RoleID"`
}
