package sheets

import (
	domainerrors "ngopi/internal/domain/errors"
	"ngopi/internal/errors"

	"google.golang.org/api/googleapi"
)

// classifyAPIError converts a raw Sheets call failure into the store error
// taxonomy. An upstream HTTP rejection becomes a SheetsError (4xx final, 5xx
// retryable); everything else, including DNS failures, resets, and expired
// deadlines, is a NetworkError.
func classifyAPIError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return domainerrors.NewSheetsError(apiErr.Code, apiErr.Message, err)
	}

	return domainerrors.NewNetworkError(op, err)
}
