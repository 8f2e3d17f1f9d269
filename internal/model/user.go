package model

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var roleRank = map[Role]int{
	RoleUser:  0,
	RoleAdmin: 1,
}

// Rank 角色权限等级，未知角色按最低权限处理
func (r Role) Rank() int {
	return roleRank[r]
}

type User struct {
	Model
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Name     string `gorm:"type:varchar(50)" json:"name"`
	Role     Role   `gorm:"type:varchar(10);default:user;not null" json:"role"`
}
