package networker

import "errors"

var (
	ErrNetworkExhausted   = errors.New("all fetch attempts failed")
	ErrEmptyOrNonText     = errors.New("content is empty or not text")
	ErrUnacceptableStatus = errors.New("unacceptable HTTP status")
)
