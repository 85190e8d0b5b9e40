package notification

import "errors"

var (
	ErrBadRequest  = errors.New("bad_request_missing_to_or_booking")
	ErrKeyNotSet   = errors.New("sendgrid_key_not_set")
	ErrFromNotSet  = errors.New("sendgrid_from_not_set")
	ErrSendFailure = errors.New("internal")
)
