package trainer

import "errors"

// ErrInvalidTrainingSpec is returned when the training loop shape is
// unusable (non-positive epochs or batch size).
var ErrInvalidTrainingSpec = errors.New("invalid training spec")
