package response

import "time"

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ValidationErrorCode     = 1
	InternalServerErrorCode = 500

	DateTimeFormat = time.RFC3339
)
