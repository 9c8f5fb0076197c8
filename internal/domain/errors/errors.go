package errors

import "errors"

var (
	ErrCredentialsMissing = errors.New("missing upstream api credentials")
	ErrUpstreamAuth       = errors.New("upstream auth failed")
	ErrUpstreamRequest    = errors.New("upstream request failed")
	ErrTransport          = errors.New("upstream transport failure")
	ErrTokenNotFound      = errors.New("bearer token not found")
)
