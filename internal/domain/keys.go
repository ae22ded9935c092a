package domain

// ContextKey is a typed key for values stored in request context
type ContextKey string

const (
	KeyUserID    ContextKey = "UserID"
	KeyUserEmail ContextKey = "UserEmail"
)
