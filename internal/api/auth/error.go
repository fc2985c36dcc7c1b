package auth

import (
	"ExpenseTracker/pkg/response"
	"net/http"
)

var (
	ErrMissingCredentials        = response.NewError(http.StatusBadRequest, "Please provide username and password.")
	ErrUsernameAlreadyExists     = response.NewError(http.StatusConflict, "Username already exists.")
	ErrInvalidUsernameOrPassword = response.NewError(http.StatusUnauthorized, "Invalid username or password.")
	ErrUserNotFound              = response.NewError(http.StatusNotFound, "User not found.")
)
