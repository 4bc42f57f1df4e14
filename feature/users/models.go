package users

import "time"

// User is a row of the user directory.
type User struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(191);not null;uniqueIndex" json:"email"`
	Badge     string    `gorm:"column:badge;type:varchar(64);not null;uniqueIndex" json:"badge"`
	FirstName string    `gorm:"column:first_name;type:varchar(100)" json:"firstName"`
	LastName  string    `gorm:"column:last_name;type:varchar(100)" json:"lastName"`
	Role      string    `gorm:"column:role;type:varchar(32)" json:"role"`
	Photo     string    `gorm:"column:photo;type:varchar(255)" json:"photo,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
