package repository

import (
	"context"
	"strings"

	"github.com/listas-tarefas/task-manager/internal/database"
	"github.com/listas-tarefas/task-manager/internal/models"
	"github.com/listas-tarefas/task-manager/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscaper escapes LIKE wildcards so a search term matches literally.
// '!' is used as the escape character because a backslash needs different
// quoting in MySQL and in SQLite/PostgreSQL.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// GormTarefaRepository is a GORM implementation of TarefaRepository
type GormTarefaRepository struct {
	db *gorm.DB
}

// NewTarefaRepository creates a new TarefaRepository
func NewTarefaRepository(db *gorm.DB) TarefaRepository {
	return &GormTarefaRepository{db: db}
}

// Create creates a new tarefa
func (r *GormTarefaRepository) Create(ctx context.Context, tarefa *models.Tarefa) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(tarefa).Error
}

// FindByID finds a tarefa by ID with its lista loaded
func (r *GormTarefaRepository) FindByID(ctx context.Context, id uint64) (*models.Tarefa, error) {
	var tarefa models.Tarefa
	if err := r.db.WithContext(ctx).Preload("Lista").First(&tarefa, id).Error; err != nil {
		return nil, err
	}
	return &tarefa, nil
}

// List retrieves the owner's tarefas with search, filter and pagination
func (r *GormTarefaRepository) List(ctx context.Context, filter TarefaFilter) ([]models.Tarefa, int64, error) {
	var tarefas []models.Tarefa

	query := r.db.WithContext(ctx).
		Model(&models.Tarefa{}).
		Scopes(database.TarefasOwnedBy(filter.OwnerID))

	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		query = query.Where(
			"(LOWER(tarefas.titulo) LIKE ? ESCAPE '!' OR LOWER(COALESCE(tarefas.descricao, '')) LIKE ? ESCAPE '!')",
			pattern, pattern,
		)
	}
	if filter.Completed != nil {
		query = query.Where("tarefas.is_completed = ?", *filter.Completed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("tarefas.created_at DESC").Order("tarefas.id DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.NewPaginationParams(filter.Page, filter.PageSize)))
	}

	if err := listQuery.Preload("Lista").Find(&tarefas).Error; err != nil {
		return nil, 0, err
	}

	return tarefas, total, nil
}

// ListByOwner retrieves every tarefa of a user, newest first
func (r *GormTarefaRepository) ListByOwner(ctx context.Context, userID uint64) ([]models.Tarefa, error) {
	tarefas, _, err := r.List(ctx, TarefaFilter{OwnerID: userID})
	return tarefas, err
}

// StatsByOwner counts a user's tarefas by completion
func (r *GormTarefaRepository) StatsByOwner(ctx context.Context, userID uint64) (TarefaStats, error) {
	var rows []struct {
		IsCompleted bool
		Total       int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Tarefa{}).
		Scopes(database.TarefasOwnedBy(userID)).
		Select("tarefas.is_completed AS is_completed, COUNT(*) AS total").
		Group("tarefas.is_completed").
		Scan(&rows).Error; err != nil {
		return TarefaStats{}, err
	}

	var stats TarefaStats
	for _, row := range rows {
		stats.Total += row.Total
		if row.IsCompleted {
			stats.Completed += row.Total
		} else {
			stats.Pending += row.Total
		}
	}
	return stats, nil
}

// Update updates a tarefa. The loaded Lista association is never written.
func (r *GormTarefaRepository) Update(ctx context.Context, tarefa *models.Tarefa) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(tarefa).Error
}

// Delete soft deletes a tarefa
func (r *GormTarefaRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Tarefa{}, id).Error
}
