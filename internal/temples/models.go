package temples

import (
	"time"
)

type Temple struct {
	ID        uint      `json:"temple_id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"temple_name" gorm:"size:150;uniqueIndex;not null"`
	Location  string    `json:"location" gorm:"size:200"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
