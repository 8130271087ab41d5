package domain

import (
	"errors"
	"fmt"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	MessageMissingEmailQuery   = "Email query parameter is required"
	MessageInvalidFoodID       = "Invalid food id format"
	MessageInternalServerError = "Internal server error"

	ErrInvalidObjectID = errors.New("invalid object id")
)

// DisallowedFieldError reports the first request-body key outside the
// entity's allowed field set. Its message is part of the API contract.
type DisallowedFieldError struct {
	Field string
}

func (e *DisallowedFieldError) Error() string {
	return fmt.Sprintf("Field %q not allowed", e.Field)
}

type (
	// InsertResult mirrors the driver's insert acknowledgement on the wire.
	InsertResult struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}

	UpdateResult struct {
		Acknowledged  bool  `json:"acknowledged"`
		MatchedCount  int64 `json:"matchedCount"`
		ModifiedCount int64 `json:"modifiedCount"`
	}

	DeleteResult struct {
		Acknowledged bool  `json:"acknowledged"`
		DeletedCount int64 `json:"deletedCount"`
	}
)
