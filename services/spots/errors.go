package spots

import "errors"

// ErrSpotNotFound is returned when a spot ID does not exist in the directory.
var ErrSpotNotFound = errors.New("spot not found")
