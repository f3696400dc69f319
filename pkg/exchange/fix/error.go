package fixgateway

import "errors"

var errSessionNotFound = errors.New("session not found for clOrdID")
