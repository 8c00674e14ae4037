package consts

// AuthorizationKey Authorization header key
const AuthorizationKey string = "Authorization"

// BearerKey Bearer token prefix
const BearerKey string = "Bearer "

// GinContextKey gin context key
const GinContextKey = "gin-context"

// TraceKey global trace id
const TraceKey string = "x-md-trace"

// UserKey global user id
const UserKey string = "x-md-uid"

// TokenKey global token
const TokenKey string = "x-md-token"

// TotalKey result total with response
const TotalKey string = "x-md-total"
