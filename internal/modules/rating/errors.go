package rating

import "errors"

var ErrMissingUserID = errors.New("uid_required")
