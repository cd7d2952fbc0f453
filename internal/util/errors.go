package util

import "errors"

var (
	ErrInvalidID        = errors.New("invalid id")
	ErrFileRequired     = errors.New("file is required")
	ErrInvalidPDF       = errors.New("Please select a PDF file")
	ErrCertificateLarge = errors.New("certificate file is too large")
	ErrInvalidStatus    = errors.New("unknown request status")
)
