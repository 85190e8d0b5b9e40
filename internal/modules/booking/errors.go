package booking

import "errors"

var ErrMissingUserID = errors.New("uid_required")
