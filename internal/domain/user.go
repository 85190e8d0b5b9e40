package domain

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"

	DefaultRole = RoleMember
)

type User struct {
	UID  string   `json:"uid" gorm:"column:uid;primaryKey" firestore:"-"`
	Role UserRole `json:"role" gorm:"column:role" firestore:"role"`
}

func (User) TableName() string { return "users" }

// EffectiveRole falls back to DefaultRole when no role is stored.
func (u *User) EffectiveRole() UserRole {
	if u == nil || u.Role == "" {
		return DefaultRole
	}
	return u.Role
}
