package models

import (
	"time"

	"gorm.io/gorm"
)

// Lista is a named collection of tarefas owned by a single user.
type Lista struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Titulo    string         `gorm:"type:varchar(255);not null" json:"titulo"`
	Descricao *string        `gorm:"type:text" json:"descricao"`
	UserID    uint64         `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User    User     `gorm:"foreignKey:UserID" json:"-"`
	Tarefas []Tarefa `gorm:"foreignKey:ListaID" json:"-"`
}

// TableName overrides gorm's inflection, which would name the table "lista".
func (Lista) TableName() string {
	return "listas"
}

// OwnedBy reports whether the lista belongs to the given user.
func (l *Lista) OwnedBy(userID uint64) bool {
	return l.UserID == userID
}
