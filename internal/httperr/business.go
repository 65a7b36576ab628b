package httperr

import "errors"

// BusinessError is a domain outcome identified by a stable code, e.g.
// "plan_not_found" or "subscription_limit_reached". Repositories and use
// cases return these; handlers translate the code into an HTTP status.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given domain code, unwrapping
// as needed.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
