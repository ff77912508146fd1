package frames

import "errors"

// ErrUnknownComponent indicates a component type with no registered decoder.
var ErrUnknownComponent = errors.New("frames: unknown component type")
