// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/validators"
	"github.com/MKhiriev/voice-dashboard/models"
)

type contactService struct {
	contacts  store.ContactRepository
	validator validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewContactService(contacts store.ContactRepository, validator validators.Validator, logger *logger.Logger) ContactService {
	return &contactService{
		contacts:  contacts,
		validator: validator,
		now:       utcNow,
		logger:    logger,
	}
}

func (s *contactService) Create(ctx context.Context, contact models.Contact) (int64, error) {
	contact = trimContact(contact)
	if err := s.validator.Validate(ctx, contact); err != nil {
		return 0, err
	}

	contact.CreatedAt = s.now()
	contact.LastCalled = nil

	id, err := s.contacts.Create(ctx, contact)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().Int64("contact_id", id).Msg("contact created")
	return id, nil
}

func (s *contactService) List(ctx context.Context, search string) ([]models.Contact, error) {
	return s.contacts.List(ctx, strings.TrimSpace(search))
}

func (s *contactService) Update(ctx context.Context, contact models.Contact) error {
	contact = trimContact(contact)
	if err := s.validator.Validate(ctx, contact); err != nil {
		return err
	}

	return s.contacts.Update(ctx, contact)
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	return s.contacts.Delete(ctx, id)
}

func trimContact(c models.Contact) models.Contact {
	c.Name = strings.TrimSpace(c.Name)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
	c.Company = strings.TrimSpace(c.Company)
	c.Notes = strings.TrimSpace(c.Notes)
	c.Tags = strings.TrimSpace(c.Tags)
	return c
}
