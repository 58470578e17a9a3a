// go-utils/context_keys.go

package utils

// ctxKey is unexported to prevent collisions.
type ctxKey string

// CtxKeyRequestID carries the per-request id set by the metrics middleware.
const CtxKeyRequestID ctxKey = "requestID"
