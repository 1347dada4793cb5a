package fetch

import "errors"

// Sentinel errors for page retrieval.
var (
	ErrFetchStatus    = errors.New("unexpected HTTP status")
	ErrPageTooLarge   = errors.New("page exceeds size limit")
	ErrNoPageNumber   = errors.New("URL does not end with a page number")
	ErrInvalidPages   = errors.New("page count must be at least 1")
	ErrBrowserConnect = errors.New("browser connection failed")
	ErrPageLoad       = errors.New("page load failed")
)
