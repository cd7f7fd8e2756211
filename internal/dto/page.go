package dto

import (
	"github.com/listas-tarefas/task-manager/internal/constants"
	"github.com/listas-tarefas/task-manager/internal/services"
)

// OutcomeSuccess marks a mutation that was applied
const OutcomeSuccess = "success"

// FlashDTO is a one-time status message. The client shows it once and
// hides it after DismissAfterMs.
type FlashDTO struct {
	Success        string `json:"success,omitempty"`
	Error          string `json:"error,omitempty"`
	DismissAfterMs int64  `json:"dismiss_after_ms"`
}

// NewFlash builds a flash block; both messages may be empty.
func NewFlash(success, errMsg string) FlashDTO {
	return FlashDTO{
		Success:        success,
		Error:          errMsg,
		DismissAfterMs: constants.FlashDismissAfter.Milliseconds(),
	}
}

// MutationResult is returned by every create, update and delete. Redirect is
// the index the client should navigate to; Message is rendered as a flash.
type MutationResult struct {
	Outcome  string      `json:"outcome"`
	Message  string      `json:"message"`
	Redirect string      `json:"redirect"`
	Data     interface{} `json:"data,omitempty"`
}

// NewSuccessResult builds a successful mutation result
func NewSuccessResult(message, redirect string, data interface{}) MutationResult {
	return MutationResult{
		Outcome:  OutcomeSuccess,
		Message:  message,
		Redirect: redirect,
		Data:     data,
	}
}

// DashboardStatsDTO is the statistics block of the dashboard page
type DashboardStatsDTO struct {
	TotalListas      int64 `json:"totalListas"`
	TotalTarefas     int64 `json:"totalTarefas"`
	CompletedTarefas int64 `json:"completedTarefas"`
	PendingTarefas   int64 `json:"pendingTarefas"`
}

// DashboardPage is the payload of GET /dashboard
type DashboardPage struct {
	Stats   DashboardStatsDTO `json:"stats"`
	Listas  []ListaDTO        `json:"listas"`
	Tarefas []TarefaDTO       `json:"tarefas"`
	Flash   FlashDTO          `json:"flash"`
}

// ListasPage is the payload of GET /listas
type ListasPage struct {
	Listas []ListaDTO `json:"listas"`
	Flash  FlashDTO   `json:"flash"`
}

// TarefaFiltersDTO echoes the active query so the client keeps its state
type TarefaFiltersDTO struct {
	Search string `json:"search"`
	Filter string `json:"filter"`
}

// TarefasPage is the payload of GET /tarefas
type TarefasPage struct {
	Tarefas TarefaListDTO    `json:"tarefas"`
	Listas  []ListaRefDTO    `json:"listas"`
	Filters TarefaFiltersDTO `json:"filters"`
	Flash   FlashDTO         `json:"flash"`
}

// ToDashboardPage converts a computed dashboard
func ToDashboardPage(d *services.Dashboard, flash FlashDTO) DashboardPage {
	return DashboardPage{
		Stats: DashboardStatsDTO{
			TotalListas:      d.Stats.TotalListas,
			TotalTarefas:     d.Stats.TotalTarefas,
			CompletedTarefas: d.Stats.CompletedTarefas,
			PendingTarefas:   d.Stats.PendingTarefas,
		},
		Listas:  ToListaDTOs(d.Listas),
		Tarefas: ToTarefaDTOs(d.Tarefas),
		Flash:   flash,
	}
}
