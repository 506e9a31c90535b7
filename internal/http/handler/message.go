package handler

const (
	msgInternal           = "Oops! Something went wrong. Please try again later."
	msgInvalidPayload     = "Invalid request payload"
	msgEmailTaken         = "Email already registered"
	msgPasswordTooLong    = "Password must be at most 72 bytes"
	msgBadCredentials     = "Incorrect email or password"
	msgNotAuthenticated   = "Not authenticated"
	msgInvalidCredentials = "Could not validate credentials"
	msgTokenExpired       = "Token has expired"
	msgTodoNotFound       = "Todo not found"
	msgInvalidTodoID      = "Todo id must be an integer"
)

// Response is the body of every error reply.
type Response struct {
	Detail string `json:"detail"`
}
