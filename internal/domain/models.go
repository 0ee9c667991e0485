package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an ID client-side so inserts work on databases
// without gen_random_uuid
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// UserRole discriminates the user record variants.
// The set is closed: unknown roles are rejected, never merged.
type UserRole string

const (
	RoleOwner   UserRole = "owner"
	RoleManager UserRole = "manager"
	RoleSale    UserRole = "sale"
)

// KnownRole reports whether r is one of the three supported role tags.
func KnownRole(r UserRole) bool {
	switch r {
	case RoleOwner, RoleManager, RoleSale:
		return true
	}
	return false
}

// Theme holds a company's branding colors and logo
type Theme struct {
	Base1        string `json:"base1"`
	Base2        string `json:"base2"`
	Highlighting string `json:"highlighting"`
	CallToAction string `json:"callToAction"`
	Logo         string `json:"logo,omitempty"`
}

// Stage is one step of a company's sales-funnel pipeline.
// Order determines position; uniqueness of order values is not enforced.
type Stage struct {
	Name  string `json:"name"`
	Show  bool   `json:"show"`
	Order int    `json:"order"`
}

// CompanyConfiguration holds the owner-editable theme and pipeline stages.
// Stored as a single JSON column.
type CompanyConfiguration struct {
	Theme  Theme   `json:"theme"`
	Stages []Stage `json:"stages"`
}

func (c CompanyConfiguration) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *CompanyConfiguration) Scan(value interface{}) error {
	return scanJSON(value, c)
}

// PBXDomainRef is the nullable PBX-domain reference carried on a company
// record. A zero DomainUUID means no domain is linked.
type PBXDomainRef struct {
	DomainUUID        string  `json:"domain_uuid"`
	DomainParentUUID  *string `json:"domain_parent_uuid"`
	DomainName        string  `json:"domain_name"`
	DomainEnabled     bool    `json:"domain_enabled"`
	DomainDescription *string `json:"domain_description"`
	InsertDate        *string `json:"insert_date"`
	InsertUser        *string `json:"insert_user"`
	UpdateDate        *string `json:"update_date"`
	UpdateUser        *string `json:"update_user"`
}

func (r PBXDomainRef) Value() (driver.Value, error) {
	if r.DomainUUID == "" {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *PBXDomainRef) Scan(value interface{}) error {
	if value == nil {
		*r = PBXDomainRef{}
		return nil
	}
	return scanJSON(value, r)
}

// Company represents a tenant managed through the admin console
type Company struct {
	BaseModel
	Name          string               `gorm:"type:varchar(100);not null;index"`
	Phone         string               `gorm:"type:varchar(50);not null"`
	Email         string               `gorm:"type:varchar(255);not null"`
	Website       string               `gorm:"type:varchar(255)"`
	Address       string               `gorm:"type:varchar(200);not null"`
	City          string               `gorm:"type:varchar(100);not null"`
	State         string               `gorm:"type:varchar(100);not null"`
	PostalCode    string               `gorm:"type:varchar(20);not null;column:postal_code"`
	Country       string               `gorm:"type:varchar(100);not null"`
	Description   string               `gorm:"type:varchar(500)"`
	PBXDomain     PBXDomainRef         `gorm:"type:jsonb;column:pbx_domain"`
	Configuration CompanyConfiguration `gorm:"type:jsonb"`
	Users         []User               `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// VTextEntry is one alternate contact channel on a user record
type VTextEntry struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
}

// VTextList stores vText entries as a JSON column
type VTextList []VTextEntry

func (l VTextList) Value() (driver.Value, error) {
	if l == nil {
		l = VTextList{}
	}
	return json.Marshal(l)
}

func (l *VTextList) Scan(value interface{}) error {
	if value == nil {
		*l = VTextList{}
		return nil
	}
	return scanJSON(value, l)
}

// User represents an owner, manager, or salesperson of a company.
// Role-specific columns are only meaningful for the matching role.
type User struct {
	BaseModel
	HighLevelID  string    `gorm:"type:varchar(100);column:highlevel_id"`
	Role         UserRole  `gorm:"type:varchar(20);not null;index"`
	Name         string    `gorm:"type:varchar(200);not null"`
	FirstName    string    `gorm:"type:varchar(100);not null;column:first_name"`
	LastName     string    `gorm:"type:varchar(100);not null;column:last_name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string    `gorm:"type:varchar(50);not null"`
	Extension    string    `gorm:"type:varchar(20)"`
	ProfilePhoto string    `gorm:"type:varchar(500);column:profile_photo"`
	PasswordHash string    `gorm:"type:varchar(100);not null;column:password_hash"`
	Position     string    `gorm:"type:varchar(100);not null"`
	VText        VTextList `gorm:"type:jsonb;column:v_text"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;column:company_id;index"`
	Company      *Company  `gorm:"foreignKey:CompanyID"`

	// owner
	GlobalSettings pq.StringArray `gorm:"type:text[];column:global_settings"`
	MetricAccess   bool           `gorm:"not null;default:true;column:metric_access"`

	// manager
	Permissions pq.StringArray `gorm:"type:text[]"`

	// sale
	CommissionRate float64    `gorm:"not null;default:0;column:commission_rate"`
	ManagerID      *uuid.UUID `gorm:"type:uuid;column:manager_id;index"`
	Manager        *User      `gorm:"foreignKey:ManagerID"`
}

// FullName returns the user's derived display name
func (u *User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// PBXDomain mirrors one tenant domain from the upstream PBX directory
type PBXDomain struct {
	DomainUUID  string    `gorm:"type:uuid;primaryKey;column:domain_uuid"`
	ParentUUID  *string   `gorm:"type:uuid;column:parent_uuid"`
	DomainName  string    `gorm:"type:varchar(255);not null;index;column:domain_name"`
	Enabled     bool      `gorm:"not null;default:true"`
	Description string    `gorm:"type:varchar(500)"`
	InsertDate  *string   `gorm:"type:varchar(50);column:insert_date"`
	InsertUser  *string   `gorm:"type:varchar(100);column:insert_user"`
	UpdateDate  *string   `gorm:"type:varchar(50);column:update_date"`
	UpdateUser  *string   `gorm:"type:varchar(100);column:update_user"`
	SyncedAt    time.Time `gorm:"not null;column:synced_at"`
}

func scanJSON(value, target interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, target)
	case string:
		return json.Unmarshal([]byte(v), target)
	default:
		return fmt.Errorf("unsupported column type %T for JSON scan", value)
	}
}
