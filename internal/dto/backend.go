package dto

import (
	"bytes"
	"encoding/json"

	"lookup-console/internal/models"
)

// ---------- Errors ----------

// BackendErrorResponse is the body of a non-2xx backend response
type BackendErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// DetailText returns detail when it is a JSON string, empty otherwise
func (r BackendErrorResponse) DetailText() string {
	if len(r.Detail) == 0 || !bytes.HasPrefix(bytes.TrimSpace(r.Detail), []byte(`"`)) {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Detail, &s); err != nil {
		return ""
	}
	return s
}

// ---------- Login ----------

type LoginRequest struct {
	PIN string `json:"pin"`
}

type LoginResponse struct {
	Token    FlexString      `json:"token"`
	Operator FlexString      `json:"asesor"`
	Detail   json.RawMessage `json:"detail,omitempty"`
}

// DetailText returns the rejection detail sent alongside a 2xx login without token
func (r LoginResponse) DetailText() string {
	return BackendErrorResponse{Detail: r.Detail}.DetailText()
}

// ---------- Search ----------

type SearchResponse struct {
	Internal []InternalRecordDto `json:"internal"`
	External ExternalSummaryDto  `json:"external"`
}

type InternalRecordDto struct {
	Name       FlexString   `json:"Nombre"`
	NationalID FlexString   `json:"DPI"`
	TaxID      FlexString   `json:"NIT"`
	Email      FlexString   `json:"Email"`
	BirthDate  FlexString   `json:"FechaNacimiento"`
	Phones     []FlexString `json:"TelBase"`
}

type ExternalSummaryDto struct {
	Links  []FlexString `json:"links"`
	Phones []FlexString `json:"phones"`
	Emails []FlexString `json:"emails"`
}

func (r SearchResponse) ToModel() models.SearchResult {
	internal := make([]models.InternalRecord, 0, len(r.Internal))
	for _, rec := range r.Internal {
		internal = append(internal, models.InternalRecord{
			Name:       rec.Name.String(),
			NationalID: rec.NationalID.String(),
			TaxID:      rec.TaxID.String(),
			Email:      rec.Email.String(),
			BirthDate:  rec.BirthDate.String(),
			Phones:     flexStrings(rec.Phones),
		})
	}

	return models.SearchResult{
		Internal: internal,
		External: models.ExternalSummary{
			Links:  flexStrings(r.External.Links),
			Phones: flexStrings(r.External.Phones),
			Emails: flexStrings(r.External.Emails),
		},
	}
}

// ---------- Reload / Export ----------

type ReloadResponse struct {
	RowsLoaded FlexString `json:"rows_loaded"`
}

type ExportResponse struct {
	CSV string `json:"csv"`
}

// ---------- History ----------

type HistoryResponse struct {
	History []HistoryEntryDto `json:"history"`
}

type HistoryEntryDto struct {
	Date       FlexString `json:"fecha"`
	Name       FlexString `json:"nombre"`
	NationalID FlexString `json:"dpi"`
	TaxID      FlexString `json:"nit"`
}

func (r HistoryResponse) ToModel() []models.HistoryEntry {
	entries := make([]models.HistoryEntry, 0, len(r.History))
	for _, h := range r.History {
		entries = append(entries, models.HistoryEntry{
			Date:       h.Date.String(),
			Name:       h.Name.String(),
			NationalID: h.NationalID.String(),
			TaxID:      h.TaxID.String(),
		})
	}
	return entries
}

// ---------- Raw records ----------

type RecordsResponse struct {
	Rows []RawRecordDto `json:"rows"`
}

type RawRecordDto struct {
	ID         FlexString `json:"ID"`
	Name       FlexString `json:"NOMBRE_CLIENTE"`
	NationalID FlexString `json:"DPI"`
	TaxID      FlexString `json:"NIT"`
	BirthDate  FlexString `json:"fecha_nacimiento"`
	Email      FlexString `json:"EMAIL"`
	Phone1     FlexString `json:"Tel_1"`
	Phone2     FlexString `json:"Tel_2"`
	Phone3     FlexString `json:"Tel_3"`
	Phone4     FlexString `json:"Tel_4"`
	Phone5     FlexString `json:"Tel_5"`
}

// ToModel converts at most limit rows
func (r RecordsResponse) ToModel(limit int) []models.RawRecord {
	rows := r.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	records := make([]models.RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.RawRecord{
			ID:         row.ID.String(),
			Name:       row.Name.String(),
			NationalID: row.NationalID.String(),
			TaxID:      row.TaxID.String(),
			BirthDate:  row.BirthDate.String(),
			Email:      row.Email.String(),
			Phones: [5]string{
				row.Phone1.String(), row.Phone2.String(), row.Phone3.String(),
				row.Phone4.String(), row.Phone5.String(),
			},
		})
	}
	return records
}
