package dto

import (
	"time"

	"github.com/listas-tarefas/task-manager/internal/models"
	"github.com/listas-tarefas/task-manager/internal/utils"
)

// TarefaDTO represents a tarefa in API responses
type TarefaDTO struct {
	ID          uint64       `json:"id"`
	Titulo      string       `json:"titulo"`
	Descricao   *string      `json:"descricao"`
	DueDate     *string      `json:"due_date"`
	IsCompleted bool         `json:"is_completed"`
	ListaID     uint64       `json:"lista_id"`
	Lista       *ListaRefDTO `json:"lista,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TarefaListDTO is a page of tarefas with its pagination block inlined
type TarefaListDTO struct {
	Data []TarefaDTO `json:"data"`
	utils.PaginationMeta
}

// ToTarefaDTO converts a Tarefa model to TarefaDTO
func ToTarefaDTO(tarefa models.Tarefa) TarefaDTO {
	dto := TarefaDTO{
		ID:          tarefa.ID,
		Titulo:      tarefa.Titulo,
		Descricao:   tarefa.Descricao,
		IsCompleted: tarefa.IsCompleted,
		ListaID:     tarefa.ListaID,
		CreatedAt:   tarefa.CreatedAt,
		UpdatedAt:   tarefa.UpdatedAt,
	}

	if tarefa.DueDate != nil {
		due := tarefa.DueDate.Format(utils.DateLayout)
		dto.DueDate = &due
	}

	// Include lista if preloaded
	if tarefa.Lista.ID != 0 {
		dto.Lista = &ListaRefDTO{ID: tarefa.Lista.ID, Titulo: tarefa.Lista.Titulo}
	}

	return dto
}

// ToTarefaDTOs converts tarefas to DTOs
func ToTarefaDTOs(tarefas []models.Tarefa) []TarefaDTO {
	items := make([]TarefaDTO, len(tarefas))
	for i, tarefa := range tarefas {
		items[i] = ToTarefaDTO(tarefa)
	}
	return items
}

// ToTarefaListDTO converts a page of tarefas together with its metadata
func ToTarefaListDTO(tarefas []models.Tarefa, params utils.PaginationParams, total int64) TarefaListDTO {
	return TarefaListDTO{
		Data:           ToTarefaDTOs(tarefas),
		PaginationMeta: utils.NewPaginationMeta(params, total, len(tarefas)),
	}
}
