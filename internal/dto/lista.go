package dto

import (
	"time"

	"github.com/listas-tarefas/task-manager/internal/models"
	"github.com/listas-tarefas/task-manager/internal/services"
)

// ListaDTO represents a lista in API responses
type ListaDTO struct {
	ID           uint64    `json:"id"`
	Titulo       string    `json:"titulo"`
	Descricao    *string   `json:"descricao"`
	UserID       uint64    `json:"user_id"`
	TarefasCount *int64    `json:"tarefas_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListaRefDTO is the minimal lista shape embedded in tarefas and pickers
type ListaRefDTO struct {
	ID     uint64 `json:"id"`
	Titulo string `json:"titulo"`
}

// ToListaDTO converts a Lista model to ListaDTO
func ToListaDTO(lista models.Lista) ListaDTO {
	return ListaDTO{
		ID:        lista.ID,
		Titulo:    lista.Titulo,
		Descricao: lista.Descricao,
		UserID:    lista.UserID,
		CreatedAt: lista.CreatedAt,
		UpdatedAt: lista.UpdatedAt,
	}
}

// ToListaDTOs converts listas to DTOs without counts
func ToListaDTOs(listas []models.Lista) []ListaDTO {
	items := make([]ListaDTO, len(listas))
	for i, lista := range listas {
		items[i] = ToListaDTO(lista)
	}
	return items
}

// ToListaWithCountDTOs converts counted listas to DTOs
func ToListaWithCountDTOs(listas []services.ListaWithCount) []ListaDTO {
	items := make([]ListaDTO, len(listas))
	for i, l := range listas {
		count := l.TarefasCount
		items[i] = ToListaDTO(l.Lista)
		items[i].TarefasCount = &count
	}
	return items
}

// ToListaRefDTOs converts listas to picker entries
func ToListaRefDTOs(listas []models.Lista) []ListaRefDTO {
	items := make([]ListaRefDTO, len(listas))
	for i, lista := range listas {
		items[i] = ListaRefDTO{ID: lista.ID, Titulo: lista.Titulo}
	}
	return items
}
