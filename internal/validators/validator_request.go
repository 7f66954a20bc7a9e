// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/voice-dashboard/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldPhoneNumber = "phone_number"
	FieldName        = "name"
	FieldMessage     = "message"
	FieldDuration    = "duration"
)

// MinPhoneLength is the shortest accepted phone number, "+" included.
const MinPhoneLength = 8

// RequestValidator implements [Validator] for call requests, contacts,
// transcript messages and call updates. Values are expected to be trimmed
// by the caller.
type RequestValidator struct{}

// NewRequestValidator constructs a [RequestValidator].
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of value. Pointers and values are
// both accepted.
func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value := value.(type) {
	case models.CallRequest:
		return v.validateCallRequest(ctx, value, fields...)
	case *models.CallRequest:
		return v.validateCallRequest(ctx, *value, fields...)

	case models.Contact:
		return v.validateContact(ctx, value, fields...)
	case *models.Contact:
		return v.validateContact(ctx, *value, fields...)

	case models.TranscriptMessage:
		return v.validateTranscriptMessage(ctx, value, fields...)
	case *models.TranscriptMessage:
		return v.validateTranscriptMessage(ctx, *value, fields...)

	case models.CallUpdate:
		return v.validateCallUpdate(ctx, value, fields...)
	case *models.CallUpdate:
		return v.validateCallUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// ValidatePhoneNumber checks an outbound number: present, starting with "+"
// and at least [MinPhoneLength] characters long.
func ValidatePhoneNumber(phone string) error {
	switch {
	case phone == "":
		return invalid(ErrPhoneRequired)
	case !strings.HasPrefix(phone, "+"):
		return invalid(ErrPhoneNoCountryCode)
	case len(phone) < MinPhoneLength:
		return &Error{Err: ErrPhoneTooShort, Detail: fmt.Sprintf("Phone number %q looks too short", phone)}
	}
	return nil
}

func (v *RequestValidator) validateCallRequest(ctx context.Context, req models.CallRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhoneNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldPhoneNumber:
			if err := ValidatePhoneNumber(req.PhoneNumber); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateContact(ctx context.Context, contact models.Contact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPhoneNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if contact.Name == "" {
				return invalid(ErrContactFieldsRequired)
			}
		case FieldPhoneNumber:
			if contact.PhoneNumber == "" {
				return invalid(ErrContactFieldsRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTranscriptMessage(ctx context.Context, msg models.TranscriptMessage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(msg.Message) == "" {
				return invalid(ErrMessageRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCallUpdate(ctx context.Context, update models.CallUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDuration}
	}

	for _, f := range fields {
		switch f {
		case FieldDuration:
			if update.Duration != nil && *update.Duration < 0 {
				return invalid(ErrNegativeDuration)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
