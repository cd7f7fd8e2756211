// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/listas-tarefas/task-manager/internal/database"
	"github.com/listas-tarefas/task-manager/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated in-memory SQLite database. A single connection
// is used so every query sees the same in-memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(database.OpenSQLite(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

// CreateUser inserts a user with a dummy password hash
func CreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "hashedpassword"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateLista inserts a lista owned by userID
func CreateLista(t *testing.T, db *gorm.DB, userID uint64, titulo string) *models.Lista {
	t.Helper()

	lista := &models.Lista{Titulo: titulo, UserID: userID}
	require.NoError(t, db.Create(lista).Error)
	return lista
}

// CreateTarefa inserts a tarefa in the given lista
func CreateTarefa(t *testing.T, db *gorm.DB, listaID uint64, titulo string, completed bool) *models.Tarefa {
	t.Helper()

	tarefa := &models.Tarefa{Titulo: titulo, ListaID: listaID, IsCompleted: completed}
	require.NoError(t, db.Omit("Lista").Create(tarefa).Error)
	return tarefa
}

// CreateTarefas inserts n pending tarefas titled "<prefix> 1".."<prefix> n"
// with strictly increasing creation times.
func CreateTarefas(t *testing.T, db *gorm.DB, listaID uint64, prefix string, n int) []*models.Tarefa {
	t.Helper()

	base := time.Now().Add(-time.Duration(n) * time.Minute)
	tarefas := make([]*models.Tarefa, 0, n)
	for i := 1; i <= n; i++ {
		tarefa := &models.Tarefa{
			Titulo:    fmt.Sprintf("%s %d", prefix, i),
			ListaID:   listaID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Omit("Lista").Create(tarefa).Error)
		tarefas = append(tarefas, tarefa)
	}
	return tarefas
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
