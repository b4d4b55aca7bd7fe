package server

import "errors"

var (
	errRandomKey       = errors.New("failed to generate session key")
	errMissingFilePart = errors.New(`multipart body has no "file" part`)
)
