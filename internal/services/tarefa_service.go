package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/listas-tarefas/task-manager/internal/constants"
	"github.com/listas-tarefas/task-manager/internal/models"
	"github.com/listas-tarefas/task-manager/internal/repository"
	"github.com/listas-tarefas/task-manager/internal/utils"
	"gorm.io/gorm"
)

// TarefaService handles tarefa business logic. A tarefa belongs to the
// owner of its lista; every operation is checked against that owner.
type TarefaService struct {
	tarefaRepo repository.TarefaRepository
	listaRepo  repository.ListaRepository
}

// NewTarefaService creates a new TarefaService
func NewTarefaService(tarefaRepo repository.TarefaRepository, listaRepo repository.ListaRepository) *TarefaService {
	return &TarefaService{
		tarefaRepo: tarefaRepo,
		listaRepo:  listaRepo,
	}
}

// ListTarefasInput is the typed query of the tarefa index
type ListTarefasInput struct {
	UserID uint64
	Search string
	Filter string
	Page   int
}

// TarefaPage is one page of the caller's tarefas
type TarefaPage struct {
	Tarefas    []models.Tarefa
	Total      int64
	Pagination utils.PaginationParams
}

// TarefaInput holds the user-editable fields of a tarefa. DueDate is the
// raw date string as submitted.
type TarefaInput struct {
	Titulo      string
	Descricao   *string
	DueDate     string
	ListaID     uint64
	IsCompleted bool
}

// CompletionFilter maps the filter query value onto is_completed.
// "all", empty and unknown values apply no filter.
func CompletionFilter(filter string) *bool {
	var completed bool
	switch filter {
	case constants.FilterCompleted:
		completed = true
	case constants.FilterPending:
		completed = false
	default:
		return nil
	}
	return &completed
}

// ListTarefas searches, filters and paginates the caller's tarefas
func (s *TarefaService) ListTarefas(ctx context.Context, input ListTarefasInput) (*TarefaPage, error) {
	params := utils.NewPaginationParams(input.Page, constants.TarefasPerPage)

	tarefas, total, err := s.tarefaRepo.List(ctx, repository.TarefaFilter{
		OwnerID:   input.UserID,
		Search:    input.Search,
		Completed: CompletionFilter(input.Filter),
		Page:      params.Page,
		PageSize:  params.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tarefas: %w", err)
	}

	return &TarefaPage{
		Tarefas:    tarefas,
		Total:      total,
		Pagination: params,
	}, nil
}

// GetTarefa returns one of the caller's tarefas
func (s *TarefaService) GetTarefa(ctx context.Context, userID, tarefaID uint64) (*models.Tarefa, error) {
	return s.findOwnedTarefa(ctx, userID, tarefaID)
}

// CreateTarefa validates the input and creates a tarefa in one of the
// caller's listas
func (s *TarefaService) CreateTarefa(ctx context.Context, userID uint64, input TarefaInput) (*models.Tarefa, error) {
	tarefa := &models.Tarefa{}
	if err := s.apply(ctx, userID, tarefa, input); err != nil {
		return nil, err
	}

	if err := s.tarefaRepo.Create(ctx, tarefa); err != nil {
		return nil, fmt.Errorf("failed to create tarefa: %w", err)
	}

	return tarefa, nil
}

// UpdateTarefa replaces the editable fields of one of the caller's tarefas.
// A tarefa may move to another lista only if the caller owns that lista too.
func (s *TarefaService) UpdateTarefa(ctx context.Context, userID, tarefaID uint64, input TarefaInput) (*models.Tarefa, error) {
	tarefa, err := s.findOwnedTarefa(ctx, userID, tarefaID)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, userID, tarefa, input); err != nil {
		return nil, err
	}

	if err := s.tarefaRepo.Update(ctx, tarefa); err != nil {
		return nil, fmt.Errorf("failed to update tarefa: %w", err)
	}

	return tarefa, nil
}

// DeleteTarefa deletes one of the caller's tarefas
func (s *TarefaService) DeleteTarefa(ctx context.Context, userID, tarefaID uint64) error {
	if _, err := s.findOwnedTarefa(ctx, userID, tarefaID); err != nil {
		return err
	}

	if err := s.tarefaRepo.Delete(ctx, tarefaID); err != nil {
		return fmt.Errorf("failed to delete tarefa: %w", err)
	}

	return nil
}

// apply validates input and copies it onto tarefa. The target lista must
// exist (validation error) and belong to the caller (ErrForbidden).
func (s *TarefaService) apply(ctx context.Context, userID uint64, tarefa *models.Tarefa, input TarefaInput) error {
	verr := &ValidationError{}
	titulo := validateTitulo(verr, input.Titulo)

	dueDate, err := utils.ParseDate(input.DueDate)
	if err != nil {
		verr.Add("due_date", "due_date is not a valid date")
	}

	if input.ListaID == 0 {
		verr.Add("lista_id", "lista_id is required")
	}
	if err := verr.Err(); err != nil {
		return err
	}

	lista, err := s.listaRepo.FindByID(ctx, input.ListaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			verr.Add("lista_id", "the selected lista_id is invalid")
			return verr
		}
		return fmt.Errorf("failed to find lista: %w", err)
	}
	if !lista.OwnedBy(userID) {
		return ErrForbidden
	}

	tarefa.Titulo = titulo
	tarefa.Descricao = normalizeDescricao(input.Descricao)
	tarefa.DueDate = dueDate
	tarefa.IsCompleted = input.IsCompleted
	tarefa.ListaID = lista.ID
	tarefa.Lista = *lista

	return nil
}

// findOwnedTarefa loads a tarefa and verifies its lista belongs to the caller
func (s *TarefaService) findOwnedTarefa(ctx context.Context, userID, tarefaID uint64) (*models.Tarefa, error) {
	tarefa, err := s.tarefaRepo.FindByID(ctx, tarefaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTarefaNotFound
		}
		return nil, fmt.Errorf("failed to find tarefa: %w", err)
	}

	if !tarefa.Lista.OwnedBy(userID) {
		return nil, ErrForbidden
	}

	return tarefa, nil
}
