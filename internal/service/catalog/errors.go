package catalog

import "errors"

// ErrUnavailable means the catalog could not be fetched. Callers recover by
// presenting an empty location list; the booking wizard simply has nothing
// selectable until a retry succeeds.
var ErrUnavailable = errors.New("catalog unavailable")
