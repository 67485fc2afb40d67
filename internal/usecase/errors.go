package usecase

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	// ErrProfileNotFound means the principal has no domain record of the
	// required role. Distinct from ErrNotFound, which is about target entities.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNotFound means the target entity id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the target structurally belongs to a different owner.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition means the requested status is not reachable from the
	// entity's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus means the requested status is outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrDuplicateApplication means the student already holds a non-withdrawn
	// application for the opportunity.
	ErrDuplicateApplication = errors.New("application already exists for this opportunity")
)

// asNotFound translates store-level lookup failures into err. A malformed hex
// id can never resolve, so it is treated the same as an absent document.
func asNotFound(storeErr, err error) error {
	if errors.Is(storeErr, mongo.ErrNoDocuments) || errors.Is(storeErr, bson.ErrInvalidHex) {
		return err
	}

	return storeErr
}
