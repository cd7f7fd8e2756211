package database

import (
	"gorm.io/gorm"

	"github.com/listas-tarefas/task-manager/internal/models"
	"github.com/listas-tarefas/task-manager/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// ListasOwnedBy restricts a listas query to the given owner
func ListasOwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("listas.user_id = ?", userID)
	}
}

// TarefasOwnedBy restricts a tarefas query to tarefas whose lista belongs to
// the given owner. Soft-deleted listas do not count.
func TarefasOwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		owned := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Lista{}).
			Select("listas.id").
			Where("listas.user_id = ?", userID)
		return db.Where("tarefas.lista_id IN (?)", owned)
	}
}
