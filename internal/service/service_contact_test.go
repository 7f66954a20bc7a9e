// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/mock"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/validators"
	"github.com/MKhiriev/voice-dashboard/models"
)

func newTestContactService(t *testing.T) (*contactService, *mock.MockContactRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactRepository(ctrl)

	svc := NewContactService(repo, validators.NewRequestValidator(), logger.Nop()).(*contactService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestContactService_Create_TrimsAndStamps(t *testing.T) {
	svc, repo := newTestContactService(t)
	stale := fixedNow.Add(-time.Hour)

	repo.EXPECT().
		Create(gomock.Any(), models.Contact{
			Name:        "Asha",
			PhoneNumber: "+919876543210",
			Company:     "Acme",
			CreatedAt:   fixedNow,
		}).
		Return(int64(3), nil)

	id, err := svc.Create(context.Background(), models.Contact{
		Name:        "  Asha ",
		PhoneNumber: " +919876543210",
		Company:     "Acme ",
		LastCalled:  &stale,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestContactService_Create_RequiresNameAndPhone(t *testing.T) {
	tests := []struct {
		name    string
		contact models.Contact
	}{
		{name: "missing name", contact: models.Contact{PhoneNumber: "+919876543210"}},
		{name: "blank name", contact: models.Contact{Name: "   ", PhoneNumber: "+919876543210"}},
		{name: "missing phone", contact: models.Contact{Name: "Asha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestContactService(t)

			_, err := svc.Create(context.Background(), tt.contact)

			assert.ErrorIs(t, err, validators.ErrContactFieldsRequired)
			assert.Equal(t, "Name and phone number are required", err.Error())
		})
	}
}

func TestContactService_Create_Duplicate(t *testing.T) {
	svc, repo := newTestContactService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrContactAlreadyExists)

	_, err := svc.Create(context.Background(), models.Contact{Name: "Asha", PhoneNumber: "+919876543210"})

	assert.ErrorIs(t, err, store.ErrContactAlreadyExists)
}

func TestContactService_List_TrimsSearch(t *testing.T) {
	svc, repo := newTestContactService(t)
	want := []models.Contact{{ID: 1, Name: "Asha"}}

	repo.EXPECT().List(gomock.Any(), "asha").Return(want, nil)

	got, err := svc.List(context.Background(), " asha ")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestContactService_Update(t *testing.T) {
	svc, repo := newTestContactService(t)

	repo.EXPECT().
		Update(gomock.Any(), models.Contact{ID: 4, Name: "Ravi", PhoneNumber: "+14155550100", Tags: "vip"}).
		Return(nil)

	err := svc.Update(context.Background(), models.Contact{ID: 4, Name: "Ravi ", PhoneNumber: "+14155550100", Tags: " vip"})

	assert.NoError(t, err)
}

func TestContactService_Update_NotFound(t *testing.T) {
	svc, repo := newTestContactService(t)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(store.ErrContactNotFound)

	err := svc.Update(context.Background(), models.Contact{ID: 4, Name: "Ravi", PhoneNumber: "+14155550100"})

	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestContactService_Delete(t *testing.T) {
	svc, repo := newTestContactService(t)

	repo.EXPECT().Delete(gomock.Any(), int64(9)).Return(store.ErrContactNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 9), store.ErrContactNotFound)
}
