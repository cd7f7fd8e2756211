package repository

import (
	"context"

	"github.com/listas-tarefas/task-manager/internal/database"
	"github.com/listas-tarefas/task-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormListaRepository is a GORM implementation of ListaRepository
type GormListaRepository struct {
	db *gorm.DB
}

// NewListaRepository creates a new ListaRepository
func NewListaRepository(db *gorm.DB) ListaRepository {
	return &GormListaRepository{db: db}
}

// Create creates a new lista
func (r *GormListaRepository) Create(ctx context.Context, lista *models.Lista) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(lista).Error
}

// FindByID finds a lista by ID
func (r *GormListaRepository) FindByID(ctx context.Context, id uint64) (*models.Lista, error) {
	var lista models.Lista
	if err := r.db.WithContext(ctx).First(&lista, id).Error; err != nil {
		return nil, err
	}
	return &lista, nil
}

// ListByOwner lists the listas of a user in creation order
func (r *GormListaRepository) ListByOwner(ctx context.Context, userID uint64) ([]models.Lista, error) {
	var listas []models.Lista
	if err := r.db.WithContext(ctx).
		Scopes(database.ListasOwnedBy(userID)).
		Order("listas.id ASC").
		Find(&listas).Error; err != nil {
		return nil, err
	}
	return listas, nil
}

// CountByOwner counts the listas of a user
func (r *GormListaRepository) CountByOwner(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Lista{}).
		Scopes(database.ListasOwnedBy(userID)).
		Count(&count).Error
	return count, err
}

// CountTarefas counts the tarefas of each given lista. Listas without
// tarefas are absent from the result.
func (r *GormListaRepository) CountTarefas(ctx context.Context, listaIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(listaIDs))
	if len(listaIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ListaID uint64
		Total   int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Tarefa{}).
		Select("tarefas.lista_id AS lista_id, COUNT(*) AS total").
		Where("tarefas.lista_id IN ?", listaIDs).
		Group("tarefas.lista_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ListaID] = row.Total
	}
	return counts, nil
}

// Update updates a lista
func (r *GormListaRepository) Update(ctx context.Context, lista *models.Lista) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(lista).Error
}

// Delete deletes a lista and all of its tarefas in a transaction
func (r *GormListaRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lista_id = ?", id).Delete(&models.Tarefa{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Lista{}, id).Error
	})
}
