package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmployeeAccessRequired = errors.New("only employees can perform this action")
	ErrEmployerAccessRequired = errors.New("only employers can perform this action")
)
