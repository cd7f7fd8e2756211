package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/listas-tarefas/task-manager/internal/constants"
)

// validateTitulo trims the titulo and checks it is present and short enough.
func validateTitulo(verr *ValidationError, titulo string) string {
	titulo = strings.TrimSpace(titulo)
	switch {
	case titulo == "":
		verr.Add("titulo", "titulo is required")
	case utf8.RuneCountInString(titulo) > constants.MaxTituloLength:
		verr.Add("titulo", fmt.Sprintf("titulo may not be greater than %d characters", constants.MaxTituloLength))
	}
	return titulo
}

// normalizeDescricao trims the optional descricao; blank becomes nil.
func normalizeDescricao(descricao *string) *string {
	if descricao == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*descricao)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
