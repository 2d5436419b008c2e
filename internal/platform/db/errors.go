package db

import "errors"

// ErrUnavailable is returned by repository implementations when the document
// store is not configured or a store operation fails. Handlers translate it
// into a 500 response carrying UnavailableMessage.
var ErrUnavailable = errors.New("document store unavailable")

// UnavailableMessage is the exact response detail clients receive when the
// store cannot serve a request. Existing clients match on this string.
const UnavailableMessage = "Database not available"
