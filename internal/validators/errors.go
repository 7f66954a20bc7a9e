// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrPhoneRequired         = errors.New("Phone number is required")
	ErrPhoneNoCountryCode    = errors.New(`Phone number must start with "+" and country code`)
	ErrPhoneTooShort         = errors.New("Phone number looks too short")
	ErrContactFieldsRequired = errors.New("Name and phone number are required")
	ErrMessageRequired       = errors.New("Message is required")
	ErrNegativeDuration      = errors.New("Duration must not be negative")
)

// Error is a validation failure. Its message is safe to show to the operator.
type Error struct {
	Err    error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalid(err error) error {
	return &Error{Err: err}
}
