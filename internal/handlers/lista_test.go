package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/listas-tarefas/task-manager/internal/dto"
	apierrors "github.com/listas-tarefas/task-manager/internal/errors"
	"github.com/listas-tarefas/task-manager/internal/middleware"
	"github.com/listas-tarefas/task-manager/internal/models"
	"github.com/listas-tarefas/task-manager/internal/repository"
	"github.com/listas-tarefas/task-manager/internal/services"
	"github.com/listas-tarefas/task-manager/internal/testutil"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ListaHandlerTestSuite defines the test suite for ListaHandler
type ListaHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ListaHandler
	owner   *models.User
	other   *models.User
}

// SetupTest runs before each test
func (suite *ListaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.db = testutil.NewTestDB(suite.T())
	suite.handler = NewListaHandler(services.NewListaService(repository.NewListaRepository(suite.db)))

	suite.owner = testutil.CreateUser(suite.T(), suite.db, "owner@example.com")
	suite.other = testutil.CreateUser(suite.T(), suite.db, "other@example.com")
}

func (suite *ListaHandlerTestSuite) router(userID uint64) *gin.Engine {
	r := gin.New()
	listas := r.Group("/listas", withUser(userID))
	{
		listas.GET("", suite.handler.ListListas)
		listas.POST("", suite.handler.CreateLista)
		listas.GET("/:id", middleware.RequireResourceID(), suite.handler.GetLista)
		listas.PUT("/:id", middleware.RequireResourceID(), suite.handler.UpdateLista)
		listas.PATCH("/:id", middleware.RequireResourceID(), suite.handler.UpdateLista)
		listas.DELETE("/:id", middleware.RequireResourceID(), suite.handler.DeleteLista)
	}
	return r
}

func (suite *ListaHandlerTestSuite) TestListListas_OnlyOwnedWithCounts() {
	mercado := testutil.CreateLista(suite.T(), suite.db, suite.owner.ID, "Mercado")
	testutil.CreateLista(suite.T(), suite.db, suite.owner.ID, "Casa")
	testutil.CreateLista(suite.T(), suite.db, suite.other.ID, "Alheia")
	testutil.CreateTarefas(suite.T(), suite.db, mercado.ID, "item", 3)

	w := doRequest(suite.router(suite.owner.ID), http.MethodGet, "/listas?flash_success=ok", nil)
	suite.Equal(http.StatusOK, w.Code)

	var page dto.ListasPage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	suite.Require().Len(page.Listas, 2)
	suite.Equal("Mercado", page.Listas[0].Titulo)
	suite.Require().NotNil(page.Listas[0].TarefasCount)
	suite.Equal(int64(3), *page.Listas[0].TarefasCount)
	suite.Equal("Casa", page.Listas[1].Titulo)
	suite.Equal(int64(0), *page.Listas[1].TarefasCount)
	suite.Equal("ok", page.Flash.Success)
	suite.Equal(int64(3000), page.Flash.DismissAfterMs)
}

func (suite *ListaHandlerTestSuite) TestListListas_Empty() {
	w := doRequest(suite.router(suite.owner.ID), http.MethodGet, "/listas", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"listas":[]`)
}

func (suite *ListaHandlerTestSuite) TestCreateLista_Success() {
	w := doRequest(suite.router(suite.owner.ID), http.MethodPost, "/listas", map[string]interface{}{
		"titulo":    "Mercado",
		"descricao": "compras",
		"user_id":   suite.other.ID,
	})
	suite.Equal(http.StatusCreated, w.Code)

	var result mutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal(dto.OutcomeSuccess, result.Outcome)
	suite.Equal("Lista criada com sucesso!", result.Message)
	suite.Equal("/listas", result.Redirect)

	var lista models.Lista
	suite.Require().NoError(suite.db.First(&lista).Error)
	suite.Equal(suite.owner.ID, lista.UserID, "owner comes from the session, not the body")
}

func (suite *ListaHandlerTestSuite) TestCreateLista_ValidationErrors() {
	tests := []struct {
		name   string
		titulo string
	}{
		{"missing titulo", ""},
		{"blank titulo", "   "},
		{"titulo too long", strings.Repeat("a", 256)},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := doRequest(suite.router(suite.owner.ID), http.MethodPost, "/listas", map[string]string{
				"titulo": tt.titulo,
			})
			suite.Equal(http.StatusUnprocessableEntity, w.Code)

			var resp errorResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			suite.Equal(apierrors.ErrCodeInvalidInput, resp.Code)
			suite.Contains(resp.Details, "titulo")
		})
	}

	var count int64
	suite.db.Model(&models.Lista{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *ListaHandlerTestSuite) TestCreateLista_InvalidBody() {
	w := doRequest(suite.router(suite.owner.ID), http.MethodPost, "/listas", "not an object")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ListaHandlerTestSuite) TestGetLista() {
	own := testutil.CreateLista(suite.T(), suite.db, suite.owner.ID, "Mercado")
	foreign := testutil.CreateLista(suite.T(), suite.db, suite.other.ID, "Alheia")
	r := suite.router(suite.owner.ID)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/listas/%d", own.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/listas/%d", foreign.ID), nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodGet, "/listas/9999", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/listas/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ListaHandlerTestSuite) TestUpdateLista_PutAndPatch() {
	lista := testutil.CreateLista(suite.T(), suite.db, suite.owner.ID, "Mercado")
	r := suite.router(suite.owner.ID)

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		w := doRequest(r, method, fmt.Sprintf("/listas/%d", lista.ID), map[string]string{
			"titulo": "Mercado " + method,
		})
		suite.Equal(http.StatusOK, w.Code)

		var result mutationResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
		suite.Equal("Lista atualizada com sucesso!", result.Message)

		var updated models.Lista
		suite.Require().NoError(suite.db.First(&updated, lista.ID).Error)
		suite.Equal("Mercado "+method, updated.Titulo)
	}
}

func (suite *ListaHandlerTestSuite) TestUpdateLista_CrossTenantForbidden() {
	foreign := testutil.CreateLista(suite.T(), suite.db, suite.other.ID, "Alheia")

	w := doRequest(suite.router(suite.owner.ID), http.MethodPut, fmt.Sprintf("/listas/%d", foreign.ID), map[string]string{
		"titulo": "Hijacked",
	})
	suite.Equal(http.StatusForbidden, w.Code)

	var unchanged models.Lista
	suite.Require().NoError(suite.db.First(&unchanged, foreign.ID).Error)
	suite.Equal("Alheia", unchanged.Titulo)
}

func (suite *ListaHandlerTestSuite) TestDeleteLista_Success() {
	lista := testutil.CreateLista(suite.T(), suite.db, suite.owner.ID, "Mercado")
	testutil.CreateTarefas(suite.T(), suite.db, lista.ID, "item", 2)

	w := doRequest(suite.router(suite.owner.ID), http.MethodDelete, fmt.Sprintf("/listas/%d", lista.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var result mutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal("Lista deletada com sucesso!", result.Message)
	suite.Equal("/listas", result.Redirect)

	var count int64
	suite.db.Model(&models.Tarefa{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *ListaHandlerTestSuite) TestDeleteLista_CrossTenantForbidden() {
	foreign := testutil.CreateLista(suite.T(), suite.db, suite.other.ID, "Alheia")

	w := doRequest(suite.router(suite.owner.ID), http.MethodDelete, fmt.Sprintf("/listas/%d", foreign.ID), nil)
	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Lista{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *ListaHandlerTestSuite) TestListListas_Unauthorized() {
	r := gin.New()
	r.GET("/listas", suite.handler.ListListas)

	w := doRequest(r, http.MethodGet, "/listas", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

// TestListaHandlerTestSuite runs the test suite
func TestListaHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListaHandlerTestSuite))
}
