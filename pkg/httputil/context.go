package httputil

type ContextKey string

// ContextURL is the key under which the public base URL of the API is set
// in the gin context.
const ContextURL ContextKey = "apiURL"
