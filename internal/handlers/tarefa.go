package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listas-tarefas/task-manager/internal/constants"
	"github.com/listas-tarefas/task-manager/internal/dto"
	"github.com/listas-tarefas/task-manager/internal/services"
	"github.com/listas-tarefas/task-manager/internal/utils"
)

// TarefaHandler serves the tarefa resource of the current user.
type TarefaHandler struct {
	tarefaService *services.TarefaService
	listaService  *services.ListaService
}

// NewTarefaHandler creates a new TarefaHandler.
func NewTarefaHandler(tarefaService *services.TarefaService, listaService *services.ListaService) *TarefaHandler {
	return &TarefaHandler{
		tarefaService: tarefaService,
		listaService:  listaService,
	}
}

type tarefaRequest struct {
	Titulo      string  `json:"titulo"`
	Descricao   *string `json:"descricao"`
	DueDate     *string `json:"due_date"`
	ListaID     uint64  `json:"lista_id"`
	IsCompleted bool    `json:"is_completed"`
}

func (r tarefaRequest) input() services.TarefaInput {
	input := services.TarefaInput{
		Titulo:      r.Titulo,
		Descricao:   r.Descricao,
		ListaID:     r.ListaID,
		IsCompleted: r.IsCompleted,
	}
	if r.DueDate != nil {
		input.DueDate = *r.DueDate
	}
	return input
}

// ListTarefas returns one page of the user's tarefas
// Query: search, filter (all|completed|pending), page
func (h *TarefaHandler) ListTarefas(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	search := c.Query("search")
	filter := normalizeFilter(c.Query("filter"))
	params := utils.GetPaginationParams(c, constants.TarefasPerPage)

	page, err := h.tarefaService.ListTarefas(c.Request.Context(), services.ListTarefasInput{
		UserID: userID,
		Search: search,
		Filter: filter,
		Page:   params.Page,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Listas for the create/edit picker
	listas, err := h.listaService.ListListaOptions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TarefasPage{
		Tarefas: dto.ToTarefaListDTO(page.Tarefas, page.Pagination, page.Total),
		Listas:  dto.ToListaRefDTOs(listas),
		Filters: dto.TarefaFiltersDTO{Search: search, Filter: filter},
		Flash:   flashFromQuery(c),
	})
}

// GetTarefa returns a single tarefa
func (h *TarefaHandler) GetTarefa(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tarefaID, ok := resourceID(c)
	if !ok {
		return
	}

	tarefa, err := h.tarefaService.GetTarefa(c.Request.Context(), userID, tarefaID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTarefaDTO(*tarefa))
}

// CreateTarefa creates a tarefa in one of the user's listas
func (h *TarefaHandler) CreateTarefa(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req tarefaRequest
	if !bindJSON(c, &req) {
		return
	}

	tarefa, err := h.tarefaService.CreateTarefa(c.Request.Context(), userID, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResult(
		"Tarefa criada com sucesso!", constants.RouteTarefas, dto.ToTarefaDTO(*tarefa)))
}

// UpdateTarefa replaces the editable fields of a tarefa
func (h *TarefaHandler) UpdateTarefa(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tarefaID, ok := resourceID(c)
	if !ok {
		return
	}

	var req tarefaRequest
	if !bindJSON(c, &req) {
		return
	}

	tarefa, err := h.tarefaService.UpdateTarefa(c.Request.Context(), userID, tarefaID, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResult(
		"Tarefa atualizada com sucesso!", constants.RouteTarefas, dto.ToTarefaDTO(*tarefa)))
}

// DeleteTarefa deletes a tarefa
func (h *TarefaHandler) DeleteTarefa(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tarefaID, ok := resourceID(c)
	if !ok {
		return
	}

	if err := h.tarefaService.DeleteTarefa(c.Request.Context(), userID, tarefaID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResult(
		"Tarefa deletada com sucesso!", constants.RouteTarefas, nil))
}

func normalizeFilter(filter string) string {
	switch filter {
	case constants.FilterCompleted, constants.FilterPending:
		return filter
	default:
		return constants.FilterAll
	}
}
