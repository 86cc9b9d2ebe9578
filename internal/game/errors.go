package game

import "errors"

// ErrInvalidDatasetSpec indicates a dataset spec that cannot produce a valid
// referential game (too few attribute values, no distractors, or a pixel
// grid too small for the attribute count).
var ErrInvalidDatasetSpec = errors.New("invalid dataset spec")
