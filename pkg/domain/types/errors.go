package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrCredential means the GitHub token could not be loaded.
	ErrCredential = goerr.New("credential error")

	// ErrTransport means a request did not get an HTTP response.
	ErrTransport = goerr.New("transport error")

	// ErrDecode means a response body did not match the expected shape.
	ErrDecode = goerr.New("decode error")

	// ErrUnexpectedStatus means GitHub answered with a status other than the expected ones.
	ErrUnexpectedStatus = goerr.New("unexpected status code")
)
