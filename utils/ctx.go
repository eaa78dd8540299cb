package utils

// Keys used on gin.Context.
const (
	RequestIDKey = "request_id"
	UserKey      = "user"
)
