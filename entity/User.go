package entity

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Model
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Avatar       string `json:"avatar"` // /uploads/avatar_<id>.<ext>
	Role         string `gorm:"size:16;not null;default:user" json:"role"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
