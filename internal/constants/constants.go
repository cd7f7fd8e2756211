package constants

import "time"

// Session and context keys
const (
	SessionCookieName    = "tarefas_session"
	ContextKeyUserID     = "user_id"
	ContextKeyRequestID  = "request_id"
	ContextKeyResourceID = "resource_id"
)

// Header names
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderIdempotencyKey = "Idempotency-Key"
)

// Validation limits
const (
	MaxTituloLength   = 255
	MinPasswordLength = 8
)

// Pagination
const (
	MinPage        = 1
	TarefasPerPage = 10
)

// Tarefa completion filters
const (
	FilterAll       = "all"
	FilterCompleted = "completed"
	FilterPending   = "pending"
)

// FlashDismissAfter is how long the client keeps a flash message on screen.
const FlashDismissAfter = 3 * time.Second

// Redirect targets returned with mutation results
const (
	RouteDashboard = "/dashboard"
	RouteListas    = "/listas"
	RouteTarefas   = "/tarefas"
	RouteLogin     = "/login"
)
