// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/models"
)

// contactRepository is the SQL implementation of [ContactRepository] over
// the "contacts" table.
type contactRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a contact and returns its id. A duplicate phone number
// yields [ErrContactAlreadyExists].
func (r *contactRepository) Create(ctx context.Context, contact models.Contact) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertContactQuery(r.db.builder, contact)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return 0, ErrContactAlreadyExists
		}
		log.Err(err).Str("func", "*contactRepository.Create").Msg("error inserting contact")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// List returns contacts ordered by name, optionally filtered by search.
func (r *contactRepository) List(ctx context.Context, search string) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContactsQuery(r.db.builder, search)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.List").Msg("error selecting contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, contact)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

// Update replaces the editable fields of the contact with contact.ID.
func (r *contactRepository) Update(ctx context.Context, contact models.Contact) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactQuery(r.db.builder, contact)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrContactAlreadyExists
		}
		log.Err(err).Str("func", "*contactRepository.Update").Int64("contact_id", contact.ID).Msg("error updating contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrContactNotFound)
}

// Delete removes the contact with id.
func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteContactQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrContactNotFound)
}

// TouchLastCalled stamps last_called on the contact owning phoneNumber. A
// number that belongs to no contact is not an error.
func (r *contactRepository) TouchLastCalled(ctx context.Context, phoneNumber string, at time.Time) error {
	query, args, err := buildTouchLastCalledQuery(r.db.builder, phoneNumber, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanContact(row rowScanner) (models.Contact, error) {
	var (
		contact    models.Contact
		company    sql.NullString
		notes      sql.NullString
		tags       sql.NullString
		lastCalled sql.NullTime
	)

	err := row.Scan(&contact.ID, &contact.Name, &contact.PhoneNumber, &company, &notes, &tags, &contact.CreatedAt, &lastCalled)
	if err != nil {
		return models.Contact{}, err
	}

	contact.Company = company.String
	contact.Notes = notes.String
	contact.Tags = tags.String
	if lastCalled.Valid {
		t := lastCalled.Time
		contact.LastCalled = &t
	}

	return contact, nil
}
