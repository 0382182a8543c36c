package constant

type contextKey string

// UserIDKey carries the authenticated user ID through the request context.
const UserIDKey contextKey = "user_id"
