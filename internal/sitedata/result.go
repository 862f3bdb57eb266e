package sitedata

// ErrorKind classifies a failed fetch. The gateway never lets a transport
// error escape as a panic or raw error; every outcome is a FetchResult value.
type ErrorKind string

const (
	// KindNotFound means the content service explicitly reported no such page.
	KindNotFound ErrorKind = "not_found"
	// KindTransientNetwork covers the expected cannot-reach-the-service
	// class (connection refused, timeout, cross-origin denial in dev).
	KindTransientNetwork ErrorKind = "transient_network"
	// KindUnknown covers malformed responses and unexpected statuses.
	KindUnknown ErrorKind = "unknown"
)

// FetchResult is the outcome of an external call: either a payload or a
// typed error kind with a human message. Always a value, never an exception,
// for this category of error.
type FetchResult[T any] struct {
	Success bool
	Data    T
	Kind    ErrorKind
	Message string
}

// Ok wraps a successful fetch.
func Ok[T any](data T) FetchResult[T] {
	return FetchResult[T]{Success: true, Data: data}
}

// Fail wraps a failed fetch with its kind and message.
func Fail[T any](kind ErrorKind, message string) FetchResult[T] {
	return FetchResult[T]{Success: false, Kind: kind, Message: message}
}
