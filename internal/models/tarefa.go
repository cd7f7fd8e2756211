package models

import (
	"time"

	"gorm.io/gorm"
)

// Tarefa is a task inside a Lista. Its owner is the owner of the lista.
type Tarefa struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Titulo      string         `gorm:"type:varchar(255);not null" json:"titulo"`
	Descricao   *string        `gorm:"type:text" json:"descricao"`
	DueDate     *time.Time     `gorm:"type:date" json:"due_date"`
	IsCompleted bool           `gorm:"not null;default:false" json:"is_completed"`
	ListaID     uint64         `gorm:"not null;index:idx_tarefas_lista_created,priority:1" json:"lista_id"`
	CreatedAt   time.Time      `gorm:"index:idx_tarefas_lista_created,priority:2" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Lista Lista `gorm:"foreignKey:ListaID" json:"-"`
}
