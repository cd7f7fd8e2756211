package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listas-tarefas/task-manager/internal/constants"
	"github.com/listas-tarefas/task-manager/internal/dto"
	"github.com/listas-tarefas/task-manager/internal/services"
)

// ListaHandler serves the lista resource of the current user.
type ListaHandler struct {
	listaService *services.ListaService
}

// NewListaHandler creates a new ListaHandler.
func NewListaHandler(listaService *services.ListaService) *ListaHandler {
	return &ListaHandler{
		listaService: listaService,
	}
}

type listaRequest struct {
	Titulo    string  `json:"titulo"`
	Descricao *string `json:"descricao"`
}

func (r listaRequest) input() services.ListaInput {
	return services.ListaInput{
		Titulo:    r.Titulo,
		Descricao: r.Descricao,
	}
}

// ListListas returns the user's listas with their tarefa counts
func (h *ListaHandler) ListListas(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	listas, err := h.listaService.ListListas(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListasPage{
		Listas: dto.ToListaWithCountDTOs(listas),
		Flash:  flashFromQuery(c),
	})
}

// GetLista returns a single lista
func (h *ListaHandler) GetLista(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listaID, ok := resourceID(c)
	if !ok {
		return
	}

	lista, err := h.listaService.GetLista(c.Request.Context(), userID, listaID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListaDTO(*lista))
}

// CreateLista creates a lista owned by the current user
func (h *ListaHandler) CreateLista(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req listaRequest
	if !bindJSON(c, &req) {
		return
	}

	lista, err := h.listaService.CreateLista(c.Request.Context(), userID, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResult(
		"Lista criada com sucesso!", constants.RouteListas, dto.ToListaDTO(*lista)))
}

// UpdateLista replaces the titulo and descricao of a lista
func (h *ListaHandler) UpdateLista(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listaID, ok := resourceID(c)
	if !ok {
		return
	}

	var req listaRequest
	if !bindJSON(c, &req) {
		return
	}

	lista, err := h.listaService.UpdateLista(c.Request.Context(), userID, listaID, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResult(
		"Lista atualizada com sucesso!", constants.RouteListas, dto.ToListaDTO(*lista)))
}

// DeleteLista deletes a lista and its tarefas
func (h *ListaHandler) DeleteLista(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listaID, ok := resourceID(c)
	if !ok {
		return
	}

	if err := h.listaService.DeleteLista(c.Request.Context(), userID, listaID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResult(
		"Lista deletada com sucesso!", constants.RouteListas, nil))
}
