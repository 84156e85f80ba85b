package checkin

import (
	"errors"
	"fmt"

	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// ErrNotCheckedIn is returned when a check-out targets a record that is not
// active (already checked out or already expired). Callers must treat this
// as "nothing to check out", not as a fatal error.
var ErrNotCheckedIn = errors.New("no active check-in found")

// ActiveElsewhereError is returned when a user tries to check in while
// still active at a different spot. It carries the conflicting record so
// the caller can drive the confirm-and-switch flow.
type ActiveElsewhereError struct {
	Existing *models.CheckIn
}

func (e *ActiveElsewhereError) Error() string {
	return fmt.Sprintf("user %s is already checked in at spot %s", e.Existing.UserID, e.Existing.SpotID)
}

// AsActiveElsewhere extracts the conflicting check-in from an error chain.
func AsActiveElsewhere(err error) (*models.CheckIn, bool) {
	var e *ActiveElsewhereError
	if errors.As(err, &e) {
		return e.Existing, true
	}
	return nil, false
}
