package platform

import "errors"

// ErrStartup is returned when the OS networking layer cannot be initialised.
var ErrStartup = errors.New("could not initialize network functions")
