package services

import (
	"context"
	"fmt"

	"github.com/listas-tarefas/task-manager/internal/models"
	"github.com/listas-tarefas/task-manager/internal/repository"
)

// DashboardService aggregates a user's listas and tarefas
type DashboardService struct {
	listaRepo  repository.ListaRepository
	tarefaRepo repository.TarefaRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(listaRepo repository.ListaRepository, tarefaRepo repository.TarefaRepository) *DashboardService {
	return &DashboardService{
		listaRepo:  listaRepo,
		tarefaRepo: tarefaRepo,
	}
}

// DashboardStats is the flat statistics block of the dashboard
type DashboardStats struct {
	TotalListas      int64
	TotalTarefas     int64
	CompletedTarefas int64
	PendingTarefas   int64
}

// Dashboard is the statistics plus the raw collections they were computed over
type Dashboard struct {
	Stats   DashboardStats
	Listas  []models.Lista
	Tarefas []models.Tarefa
}

// GetDashboard computes the dashboard of a user. It has no side effects.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint64) (*Dashboard, error) {
	totalListas, err := s.listaRepo.CountByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count listas: %w", err)
	}

	stats, err := s.tarefaRepo.StatsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tarefas: %w", err)
	}

	listas, err := s.listaRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list listas: %w", err)
	}

	tarefas, err := s.tarefaRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tarefas: %w", err)
	}

	return &Dashboard{
		Stats: DashboardStats{
			TotalListas:      totalListas,
			TotalTarefas:     stats.Total,
			CompletedTarefas: stats.Completed,
			PendingTarefas:   stats.Pending,
		},
		Listas:  listas,
		Tarefas: tarefas,
	}, nil
}
