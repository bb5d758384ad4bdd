package pattern

import "errors"

// ErrUnsupportedPattern is returned when a regex pattern uses a construct
// outside the supported subset, or is malformed. The wrapped message names
// the construct and its position.
var ErrUnsupportedPattern = errors.New("unsupported pattern construct")
