package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/listas-tarefas/task-manager/internal/models"
	"github.com/listas-tarefas/task-manager/internal/repository"
	"gorm.io/gorm"
)

// ListaService handles lista business logic. Every operation takes the
// caller's user ID and only touches listas owned by that user.
type ListaService struct {
	listaRepo repository.ListaRepository
}

// NewListaService creates a new ListaService
func NewListaService(listaRepo repository.ListaRepository) *ListaService {
	return &ListaService{
		listaRepo: listaRepo,
	}
}

// ListaInput holds the user-editable fields of a lista
type ListaInput struct {
	Titulo    string
	Descricao *string
}

// ListaWithCount is a lista annotated with the number of its tarefas
type ListaWithCount struct {
	Lista        models.Lista
	TarefasCount int64
}

// ListListas returns the caller's listas in creation order with tarefa counts
func (s *ListaService) ListListas(ctx context.Context, userID uint64) ([]ListaWithCount, error) {
	listas, err := s.listaRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list listas: %w", err)
	}

	ids := make([]uint64, len(listas))
	for i, l := range listas {
		ids[i] = l.ID
	}

	counts, err := s.listaRepo.CountTarefas(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count tarefas: %w", err)
	}

	result := make([]ListaWithCount, len(listas))
	for i, l := range listas {
		result[i] = ListaWithCount{Lista: l, TarefasCount: counts[l.ID]}
	}
	return result, nil
}

// ListListaOptions returns the caller's listas for pickers, without counts
func (s *ListaService) ListListaOptions(ctx context.Context, userID uint64) ([]models.Lista, error) {
	listas, err := s.listaRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list listas: %w", err)
	}
	return listas, nil
}

// GetLista returns one of the caller's listas
func (s *ListaService) GetLista(ctx context.Context, userID, listaID uint64) (*models.Lista, error) {
	return s.findOwnedLista(ctx, userID, listaID)
}

// CreateLista validates the input and creates a lista owned by the caller
func (s *ListaService) CreateLista(ctx context.Context, userID uint64, input ListaInput) (*models.Lista, error) {
	verr := &ValidationError{}
	titulo := validateTitulo(verr, input.Titulo)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	lista := &models.Lista{
		Titulo:    titulo,
		Descricao: normalizeDescricao(input.Descricao),
		UserID:    userID,
	}

	if err := s.listaRepo.Create(ctx, lista); err != nil {
		return nil, fmt.Errorf("failed to create lista: %w", err)
	}

	return lista, nil
}

// UpdateLista replaces the editable fields of one of the caller's listas
func (s *ListaService) UpdateLista(ctx context.Context, userID, listaID uint64, input ListaInput) (*models.Lista, error) {
	lista, err := s.findOwnedLista(ctx, userID, listaID)
	if err != nil {
		return nil, err
	}

	verr := &ValidationError{}
	titulo := validateTitulo(verr, input.Titulo)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	lista.Titulo = titulo
	lista.Descricao = normalizeDescricao(input.Descricao)

	if err := s.listaRepo.Update(ctx, lista); err != nil {
		return nil, fmt.Errorf("failed to update lista: %w", err)
	}

	return lista, nil
}

// DeleteLista deletes one of the caller's listas along with its tarefas
func (s *ListaService) DeleteLista(ctx context.Context, userID, listaID uint64) error {
	if _, err := s.findOwnedLista(ctx, userID, listaID); err != nil {
		return err
	}

	if err := s.listaRepo.Delete(ctx, listaID); err != nil {
		return fmt.Errorf("failed to delete lista: %w", err)
	}

	return nil
}

// findOwnedLista loads a lista and verifies the caller owns it
func (s *ListaService) findOwnedLista(ctx context.Context, userID, listaID uint64) (*models.Lista, error) {
	lista, err := s.listaRepo.FindByID(ctx, listaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListaNotFound
		}
		return nil, fmt.Errorf("failed to find lista: %w", err)
	}

	if !lista.OwnedBy(userID) {
		return nil, ErrForbidden
	}

	return lista, nil
}
