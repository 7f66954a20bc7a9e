// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Contact is an address book entry the operator can call.
// PhoneNumber is unique across contacts.
type Contact struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phone_number"`
	Company     string     `json:"company"`
	Notes       string     `json:"notes"`
	Tags        string     `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	LastCalled  *time.Time `json:"last_called"`
}
