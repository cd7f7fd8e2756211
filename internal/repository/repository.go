package repository

import (
	"context"

	"github.com/listas-tarefas/task-manager/internal/models"
)

// ListaRepository defines the interface for lista data access.
// Lookups by ID are not owner-scoped; callers compare Lista.UserID.
type ListaRepository interface {
	// Create creates a new lista
	Create(ctx context.Context, lista *models.Lista) error

	// FindByID finds a lista by ID
	FindByID(ctx context.Context, id uint64) (*models.Lista, error)

	// ListByOwner lists the listas of a user in creation order
	ListByOwner(ctx context.Context, userID uint64) ([]models.Lista, error)

	// CountByOwner counts the listas of a user
	CountByOwner(ctx context.Context, userID uint64) (int64, error)

	// CountTarefas counts the tarefas of each given lista
	CountTarefas(ctx context.Context, listaIDs []uint64) (map[uint64]int64, error)

	// Update updates a lista
	Update(ctx context.Context, lista *models.Lista) error

	// Delete deletes a lista together with its tarefas
	Delete(ctx context.Context, id uint64) error
}

// TarefaFilter holds filtering options for listing tarefas
type TarefaFilter struct {
	OwnerID   uint64
	Search    string
	Completed *bool
	Page      int
	PageSize  int
}

// TarefaStats is the completion breakdown of a user's tarefas
type TarefaStats struct {
	Total     int64
	Completed int64
	Pending   int64
}

// TarefaRepository defines the interface for tarefa data access
type TarefaRepository interface {
	// Create creates a new tarefa
	Create(ctx context.Context, tarefa *models.Tarefa) error

	// FindByID finds a tarefa by ID with its lista loaded
	FindByID(ctx context.Context, id uint64) (*models.Tarefa, error)

	// List retrieves the owner's tarefas with search, filter and pagination
	List(ctx context.Context, filter TarefaFilter) ([]models.Tarefa, int64, error)

	// ListByOwner retrieves every tarefa of a user, newest first
	ListByOwner(ctx context.Context, userID uint64) ([]models.Tarefa, error)

	// StatsByOwner counts a user's tarefas by completion
	StatsByOwner(ctx context.Context, userID uint64) (TarefaStats, error)

	// Update updates a tarefa
	Update(ctx context.Context, tarefa *models.Tarefa) error

	// Delete soft deletes a tarefa
	Delete(ctx context.Context, id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by e-mail address
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
