package services

import (
	"context"
	"testing"

	"github.com/listas-tarefas/task-manager/internal/constants"
	"github.com/listas-tarefas/task-manager/internal/models"
	"github.com/listas-tarefas/task-manager/internal/repository"
	"github.com/listas-tarefas/task-manager/internal/testutil"
	"github.com/listas-tarefas/task-manager/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type TarefaServiceTestSuite struct {
	suite.Suite
	db           *gorm.DB
	ctx          context.Context
	service      *TarefaService
	owner        *models.User
	other        *models.User
	ownerLista   *models.Lista
	foreignLista *models.Lista
}

func (s *TarefaServiceTestSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.ctx = context.Background()
	s.service = NewTarefaService(repository.NewTarefaRepository(s.db), repository.NewListaRepository(s.db))
	s.owner = testutil.CreateUser(s.T(), s.db, "owner@example.com")
	s.other = testutil.CreateUser(s.T(), s.db, "other@example.com")
	s.ownerLista = testutil.CreateLista(s.T(), s.db, s.owner.ID, "Minha")
	s.foreignLista = testutil.CreateLista(s.T(), s.db, s.other.ID, "Alheia")
}

func (s *TarefaServiceTestSuite) list(search, filter string, page int) *TarefaPage {
	result, err := s.service.ListTarefas(s.ctx, ListTarefasInput{
		UserID: s.owner.ID,
		Search: search,
		Filter: filter,
		Page:   page,
	})
	s.Require().NoError(err)
	return result
}

func (s *TarefaServiceTestSuite) TestCreateTarefa_Success() {
	tarefa, err := s.service.CreateTarefa(s.ctx, s.owner.ID, TarefaInput{
		Titulo:      "Comprar pão",
		Descricao:   testutil.StringPtr("integral"),
		DueDate:     "2025-06-01",
		ListaID:     s.ownerLista.ID,
		IsCompleted: true,
	})
	s.Require().NoError(err)

	s.NotZero(tarefa.ID)
	s.Equal(s.ownerLista.ID, tarefa.ListaID)
	s.True(tarefa.IsCompleted)
	s.Require().NotNil(tarefa.DueDate)
	s.Equal("2025-06-01", tarefa.DueDate.Format(utils.DateLayout))
}

func (s *TarefaServiceTestSuite) TestCreateTarefa_ValidationErrors() {
	_, err := s.service.CreateTarefa(s.ctx, s.owner.ID, TarefaInput{
		Titulo:  "",
		DueDate: "amanhã",
	})

	verr, ok := AsValidationError(err)
	s.Require().True(ok, "expected validation error, got %v", err)
	s.Contains(verr.Fields, "titulo")
	s.Contains(verr.Fields, "due_date")
	s.Contains(verr.Fields, "lista_id")
}

func (s *TarefaServiceTestSuite) TestCreateTarefa_NonexistentListaIsValidationError() {
	_, err := s.service.CreateTarefa(s.ctx, s.owner.ID, TarefaInput{
		Titulo:  "Órfã",
		ListaID: 9999,
	})

	verr, ok := AsValidationError(err)
	s.Require().True(ok, "expected validation error, got %v", err)
	s.Contains(verr.Fields, "lista_id")
}

func (s *TarefaServiceTestSuite) TestCreateTarefa_ForeignListaForbidden() {
	_, err := s.service.CreateTarefa(s.ctx, s.owner.ID, TarefaInput{
		Titulo:  "Invasora",
		ListaID: s.foreignLista.ID,
	})
	s.ErrorIs(err, ErrForbidden)

	var count int64
	s.db.Model(&models.Tarefa{}).Where("lista_id = ?", s.foreignLista.ID).Count(&count)
	s.Equal(int64(0), count)
}

func (s *TarefaServiceTestSuite) TestUpdateTarefa_TogglesCompletionAndMoves() {
	tarefa := testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "Mover", false)
	target := testutil.CreateLista(s.T(), s.db, s.owner.ID, "Destino")

	updated, err := s.service.UpdateTarefa(s.ctx, s.owner.ID, tarefa.ID, TarefaInput{
		Titulo:      "Movida",
		ListaID:     target.ID,
		IsCompleted: true,
	})
	s.Require().NoError(err)
	s.Equal(target.ID, updated.ListaID)

	var stored models.Tarefa
	s.Require().NoError(s.db.First(&stored, tarefa.ID).Error)
	s.Equal("Movida", stored.Titulo)
	s.Equal(target.ID, stored.ListaID)
	s.True(stored.IsCompleted)
	s.Nil(stored.DueDate)
}

func (s *TarefaServiceTestSuite) TestUpdateTarefa_OtherUsersTarefaForbidden() {
	tarefa := testutil.CreateTarefa(s.T(), s.db, s.foreignLista.ID, "Alheia", false)

	_, err := s.service.UpdateTarefa(s.ctx, s.owner.ID, tarefa.ID, TarefaInput{
		Titulo:  "Tomada",
		ListaID: s.ownerLista.ID,
	})
	s.ErrorIs(err, ErrForbidden)

	var stored models.Tarefa
	s.Require().NoError(s.db.First(&stored, tarefa.ID).Error)
	s.Equal("Alheia", stored.Titulo)
	s.Equal(s.foreignLista.ID, stored.ListaID)
}

func (s *TarefaServiceTestSuite) TestUpdateTarefa_MoveIntoForeignListaForbidden() {
	tarefa := testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "Minha", false)

	_, err := s.service.UpdateTarefa(s.ctx, s.owner.ID, tarefa.ID, TarefaInput{
		Titulo:  "Minha",
		ListaID: s.foreignLista.ID,
	})
	s.ErrorIs(err, ErrForbidden)

	var stored models.Tarefa
	s.Require().NoError(s.db.First(&stored, tarefa.ID).Error)
	s.Equal(s.ownerLista.ID, stored.ListaID)
}

func (s *TarefaServiceTestSuite) TestGetTarefa_NotFound() {
	_, err := s.service.GetTarefa(s.ctx, s.owner.ID, 4242)
	s.ErrorIs(err, ErrTarefaNotFound)
}

func (s *TarefaServiceTestSuite) TestDeleteTarefa() {
	mine := testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "Minha", false)
	theirs := testutil.CreateTarefa(s.T(), s.db, s.foreignLista.ID, "Alheia", false)

	s.ErrorIs(s.service.DeleteTarefa(s.ctx, s.owner.ID, theirs.ID), ErrForbidden)
	s.Require().NoError(s.service.DeleteTarefa(s.ctx, s.owner.ID, mine.ID))
	s.ErrorIs(s.service.DeleteTarefa(s.ctx, s.owner.ID, mine.ID), ErrTarefaNotFound)

	var count int64
	s.db.Model(&models.Tarefa{}).Where("id = ?", theirs.ID).Count(&count)
	s.Equal(int64(1), count)
}

func (s *TarefaServiceTestSuite) TestListTarefas_SearchIsCaseInsensitiveAndScoped() {
	a := testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "Buy GROCERIES", false)
	b := testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "Weekend", false)
	s.db.Model(b).Update("descricao", "groceries and more")
	testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "Laundry", false)
	testutil.CreateTarefa(s.T(), s.db, s.foreignLista.ID, "groceries for someone else", false)

	result := s.list("groceries", "", 1)

	s.Equal(int64(2), result.Total)
	ids := []uint64{result.Tarefas[0].ID, result.Tarefas[1].ID}
	s.ElementsMatch([]uint64{a.ID, b.ID}, ids)
}

func (s *TarefaServiceTestSuite) TestListTarefas_SearchFoldsAccentedCase() {
	revisao := testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "REVISÃO do relatório", false)
	acucar := testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "Mercado", false)
	s.db.Model(acucar).Update("descricao", "AÇÚCAR mascavo")

	result := s.list("revisão", "", 1)
	s.Require().Len(result.Tarefas, 1)
	s.Equal(revisao.ID, result.Tarefas[0].ID)

	result = s.list("Açúcar", "", 1)
	s.Require().Len(result.Tarefas, 1)
	s.Equal(acucar.ID, result.Tarefas[0].ID)
}

func (s *TarefaServiceTestSuite) TestListTarefas_SearchWildcardsMatchLiterally() {
	testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "100% done", false)
	testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "1000 done", false)

	result := s.list("0%", "", 1)
	s.Require().Len(result.Tarefas, 1)
	s.Equal("100% done", result.Tarefas[0].Titulo)

	result = s.list("_", "", 1)
	s.Len(result.Tarefas, 0)
}

func (s *TarefaServiceTestSuite) TestListTarefas_CompletionFilter() {
	for i := 0; i < 3; i++ {
		testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "feita", true)
	}
	for i := 0; i < 2; i++ {
		testutil.CreateTarefa(s.T(), s.db, s.ownerLista.ID, "pendente", false)
	}

	s.Equal(int64(3), s.list("", constants.FilterCompleted, 1).Total)
	s.Equal(int64(2), s.list("", constants.FilterPending, 1).Total)
	s.Equal(int64(5), s.list("", constants.FilterAll, 1).Total)
	s.Equal(int64(5), s.list("", "", 1).Total)
	s.Equal(int64(5), s.list("", "bogus", 1).Total)
}

func (s *TarefaServiceTestSuite) TestListTarefas_PaginationNewestFirst() {
	created := testutil.CreateTarefas(s.T(), s.db, s.ownerLista.ID, "Tarefa", 25)

	first := s.list("", "", 1)
	s.Len(first.Tarefas, 10)
	s.Equal(created[24].ID, first.Tarefas[0].ID)
	meta := utils.NewPaginationMeta(first.Pagination, first.Total, len(first.Tarefas))
	s.Equal(utils.PaginationMeta{CurrentPage: 1, LastPage: 3, PerPage: 10, Total: 25, From: 1, To: 10}, meta)

	last := s.list("", "", 3)
	s.Len(last.Tarefas, 5)
	s.Equal(created[0].ID, last.Tarefas[4].ID)
	meta = utils.NewPaginationMeta(last.Pagination, last.Total, len(last.Tarefas))
	s.Equal(21, meta.From)
	s.Equal(25, meta.To)

	s.Equal("Minha", last.Tarefas[0].Lista.Titulo)
}

func (s *TarefaServiceTestSuite) TestListTarefas_ExcludesTarefasOfDeletedListas() {
	lista := testutil.CreateLista(s.T(), s.db, s.owner.ID, "Temporária")
	testutil.CreateTarefa(s.T(), s.db, lista.ID, "some", false)
	s.Require().NoError(s.db.Delete(&models.Lista{}, lista.ID).Error)

	s.Equal(int64(0), s.list("", "", 1).Total)
}

func TestCompletionFilter(t *testing.T) {
	assert.Nil(t, CompletionFilter(""))
	assert.Nil(t, CompletionFilter(constants.FilterAll))
	assert.Nil(t, CompletionFilter("done"))
	assert.True(t, *CompletionFilter(constants.FilterCompleted))
	assert.False(t, *CompletionFilter(constants.FilterPending))
}

func TestTarefaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TarefaServiceTestSuite))
}
