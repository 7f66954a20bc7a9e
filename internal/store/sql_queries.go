// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/voice-dashboard/models"
)

const (
	callsTable       = "calls"
	contactsTable    = "contacts"
	transcriptsTable = "transcripts"
)

var callColumns = []string{
	"id", "phone_number", "room_name", "dispatch_id", "status", "duration", "notes",
	"created_at", "ended_at",
	"cost_livekit", "cost_stt", "cost_tts", "cost_llm", "total_cost_usd", "total_cost_inr",
}

var contactColumns = []string{
	"id", "name", "phone_number", "company", "notes", "tags", "created_at", "last_called",
}

var transcriptColumns = []string{"id", "speaker", "message", "timestamp"}

func buildInsertCallQuery(b sq.StatementBuilderType, call models.Call) (string, []any, error) {
	return b.Insert(callsTable).
		Columns("phone_number", "room_name", "dispatch_id", "status", "created_at").
		Values(call.PhoneNumber, call.RoomName, call.DispatchID, call.Status, call.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildListCallsQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	return b.Select(callColumns...).
		From(callsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}

// buildUpdateCallQuery builds a partial UPDATE touching only the columns
// present in update.
func buildUpdateCallQuery(b sq.StatementBuilderType, id int64, update models.CallUpdate) (string, []any, error) {
	set := make(map[string]any, 10)

	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.Cost != nil {
		set["cost_livekit"] = update.Cost.CostLiveKit
		set["cost_stt"] = update.Cost.CostSTT
		set["cost_tts"] = update.Cost.CostTTS
		set["cost_llm"] = update.Cost.CostLLM
		set["total_cost_usd"] = update.Cost.TotalCostUSD
		set["total_cost_inr"] = update.Cost.TotalCostINR
	}
	if update.EndedAt != nil {
		set["ended_at"] = *update.EndedAt
	}

	return b.Update(callsTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCloseStaleCallsQuery(b sq.StatementBuilderType, cutoff, endedAt time.Time) (string, []any, error) {
	return b.Update(callsTable).
		Set("status", models.CallStatusNoAnswer).
		Set("ended_at", endedAt).
		Where(sq.Eq{"status": models.CallStatusDialing}).
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
}

func buildInsertContactQuery(b sq.StatementBuilderType, c models.Contact) (string, []any, error) {
	return b.Insert(contactsTable).
		Columns("name", "phone_number", "company", "notes", "tags", "created_at").
		Values(c.Name, c.PhoneNumber, c.Company, c.Notes, c.Tags, c.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildListContactsQuery selects contacts ordered by name. A non-empty search
// matches as a substring of name, phone number or company.
func buildListContactsQuery(b sq.StatementBuilderType, search string) (string, []any, error) {
	query := b.Select(contactColumns...).From(contactsTable)

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(sq.Or{
			sq.Like{"name": pattern},
			sq.Like{"phone_number": pattern},
			sq.Like{"company": pattern},
		})
	}

	return query.OrderBy("name", "id").ToSql()
}

func buildUpdateContactQuery(b sq.StatementBuilderType, c models.Contact) (string, []any, error) {
	return b.Update(contactsTable).
		Set("name", c.Name).
		Set("phone_number", c.PhoneNumber).
		Set("company", c.Company).
		Set("notes", c.Notes).
		Set("tags", c.Tags).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
}

func buildDeleteContactQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(contactsTable).Where(sq.Eq{"id": id}).ToSql()
}

func buildTouchLastCalledQuery(b sq.StatementBuilderType, phoneNumber string, at time.Time) (string, []any, error) {
	return b.Update(contactsTable).
		Set("last_called", at).
		Where(sq.Eq{"phone_number": phoneNumber}).
		ToSql()
}

func buildInsertTranscriptQuery(b sq.StatementBuilderType, m models.TranscriptMessage) (string, []any, error) {
	return b.Insert(transcriptsTable).
		Columns("call_id", "speaker", "message", "timestamp").
		Values(m.CallID, m.Speaker, m.Message, m.Timestamp).
		Suffix("RETURNING id").
		ToSql()
}

func buildListTranscriptQuery(b sq.StatementBuilderType, callID int64) (string, []any, error) {
	return b.Select(transcriptColumns...).
		From(transcriptsTable).
		Where(sq.Eq{"call_id": callID}).
		OrderBy("timestamp ASC", "id ASC").
		ToSql()
}

func buildCostTotalsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(
		"COALESCE(SUM(cost_livekit), 0)",
		"COALESCE(SUM(cost_stt), 0)",
		"COALESCE(SUM(cost_tts), 0)",
		"COALESCE(SUM(cost_llm), 0)",
		"COALESCE(SUM(total_cost_usd), 0)",
		"COALESCE(SUM(total_cost_inr), 0)",
		"CAST(COALESCE(SUM(duration), 0) AS BIGINT)",
	).From(callsTable).ToSql()
}

func buildWindowTotalsQuery(b sq.StatementBuilderType, since time.Time) (string, []any, error) {
	return b.Select(
		"COALESCE(SUM(total_cost_usd), 0)",
		"COALESCE(SUM(total_cost_inr), 0)",
		"COUNT(*)",
	).From(callsTable).
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
}

func buildCountQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Select("COUNT(*)").From(table).ToSql()
}

func buildStatusCountsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("status", "COUNT(*)").
		From(callsTable).
		GroupBy("status").
		ToSql()
}

func buildDailyCountsQuery(b sq.StatementBuilderType, since time.Time) (string, []any, error) {
	return b.Select("CAST(DATE(created_at) AS TEXT) AS day", "COUNT(*)").
		From(callsTable).
		Where(sq.GtOrEq{"created_at": since}).
		GroupBy("day").
		OrderBy("day").
		ToSql()
}
