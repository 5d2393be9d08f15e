package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionLogin         = "login"
	AuditActionLogout        = "logout"
	AuditActionSearch        = "search"
	AuditActionPartialSearch = "partial_search"
	AuditActionReload        = "reload"
	AuditActionExport        = "export"
	AuditActionHistory       = "history"
	AuditActionRecords       = "records"
)

const (
	AuditOutcomeSuccess   = "success"
	AuditOutcomeRejected  = "rejected"
	AuditOutcomeFailed    = "failed"
	AuditOutcomeCancelled = "cancelled"
	AuditOutcomeBlocked   = "blocked"
	AuditOutcomeStale     = "stale"
)

type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ConsoleID string    `gorm:"type:varchar(64);index" json:"console_id"`
	Operator  string    `gorm:"type:varchar(255)" json:"operator,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Outcome   string    `gorm:"type:varchar(32);not null" json:"outcome"`
	Detail    string    `gorm:"type:text" json:"detail,omitempty"`
	IPAddress string    `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent string    `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata  JSONBMap  `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if al.Metadata == nil {
		return defaultValue
	}

	if value, exists := al.Metadata[key]; exists {
		return value
	}

	return defaultValue
}

func (al *AuditLog) String() string {
	operator := al.Operator
	if operator == "" {
		operator = "anonymous"
	}

	return fmt.Sprintf("AuditLog[Console: %s, Operator: %s, Action: %s, Outcome: %s, IP: %s, Time: %s]",
		al.ConsoleID, operator, al.Action, al.Outcome, al.IPAddress, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// AuditFilter narrows audit log queries; zero values are ignored
type AuditFilter struct {
	ConsoleID string
	Operator  string
	Action    string
	Since     time.Time
	Limit     int
	Offset    int
}

// JSONBMap is stored as JSON text so the same column works on sqlite and postgres
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
