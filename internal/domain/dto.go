package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Form inputs
//
// These mirror the admin console's form payloads verbatim. They are loose on
// purpose: every constraint lives in the validation package, which turns an
// input into its normalized counterpart or a complete set of field errors.
// ---------------------------------------------------------------------------

// ThemeInput carries the four branding colors plus an optional logo URL
type ThemeInput struct {
	Base1        string `json:"base1"`
	Base2        string `json:"base2"`
	Highlighting string `json:"highlighting"`
	CallToAction string `json:"callToAction"`
	Logo         string `json:"logo"`
}

// StageInput is one pipeline stage as submitted by the console
type StageInput struct {
	Name  string `json:"name"`
	Show  bool   `json:"show"`
	Order int    `json:"order"`
}

// ConfigurationInput groups theme and stages
type ConfigurationInput struct {
	Theme  ThemeInput   `json:"theme"`
	Stages []StageInput `json:"stages"`
}

// CompanyInput is the raw company form payload
type CompanyInput struct {
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	Email         string             `json:"email"`
	Website       string             `json:"website"`
	Address       string             `json:"address"`
	City          string             `json:"city"`
	State         string             `json:"state"`
	PostalCode    string             `json:"postalCode"`
	Country       string             `json:"country"`
	Description   string             `json:"description"`
	PBXURL        *PBXDomainRef      `json:"pbxUrl"`
	Configuration ConfigurationInput `json:"configuration"`
}

// UserInput is the raw user form payload. The role tag selects which schema
// variant the record is validated against.
type UserInput struct {
	Role         string       `json:"role"`
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Extension    string       `json:"extension"`
	ProfilePhoto string       `json:"profilePhoto"`
	Password     string       `json:"password"`
	Position     string       `json:"position"`
	VText        []VTextEntry `json:"vText"`
	CompanyID    string       `json:"companyId"`

	// owner
	GlobalSettings []string `json:"globalSettings"`
	MetricAccess   *bool    `json:"metricAccess"`

	// manager
	Permissions []string `json:"permissions"`

	// sale
	CommissionRate Number `json:"commissionRate"`
	ManagerID      string `json:"managerId"`
}

// ---------------------------------------------------------------------------
// Normalized records
//
// The validator's success output. Every field carries its canonical type and
// every optional field its documented default. The JSON shape of these types
// is the wire contract the backend persists.
// ---------------------------------------------------------------------------

// NormalizedTheme is a validated theme block
type NormalizedTheme struct {
	Base1        string `json:"base1" validate:"required,hexcolor"`
	Base2        string `json:"base2" validate:"required,hexcolor"`
	Highlighting string `json:"highlighting" validate:"required,hexcolor"`
	CallToAction string `json:"callToAction" validate:"required,hexcolor"`
	Logo         string `json:"logo,omitempty" validate:"omitempty,url"`
}

// NormalizedStage is a validated pipeline stage
type NormalizedStage struct {
	Name  string `json:"name" validate:"required,min=1"`
	Show  bool   `json:"show"`
	Order int    `json:"order" validate:"gte=1"`
}

// NormalizedConfiguration is a validated configuration block
type NormalizedConfiguration struct {
	Theme  NormalizedTheme   `json:"theme"`
	Stages []NormalizedStage `json:"stages" validate:"dive"`
}

// NormalizedCompany is a validated, canonical company record
type NormalizedCompany struct {
	Name          string                  `json:"name" validate:"required,min=2,max=100"`
	Phone         string                  `json:"phone" validate:"required,min=10,phone"`
	Email         string                  `json:"email" validate:"required,email"`
	Website       string                  `json:"website" validate:"omitempty,url"`
	Address       string                  `json:"address" validate:"required,min=5,max=200"`
	City          string                  `json:"city" validate:"required,min=2,max=100"`
	State         string                  `json:"state" validate:"required,min=2,max=100"`
	PostalCode    string                  `json:"postalCode" validate:"required,uspostal"`
	Country       string                  `json:"country" validate:"required,min=2,max=100"`
	Description   string                  `json:"description,omitempty" validate:"max=500"`
	PBXURL        *PBXDomainRef           `json:"pbxUrl"`
	Configuration NormalizedConfiguration `json:"configuration"`
}

// NormalizedUser is a validated, canonical user record. Common fields are
// always populated; role-specific fields are meaningful only for the matching
// role and the JSON encoding emits exactly the variant the role selects.
type NormalizedUser struct {
	Role         UserRole     `json:"role"`
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name" validate:"min=2,max=200"`
	FirstName    string       `json:"firstName" validate:"required,min=2,max=100"`
	LastName     string       `json:"lastName" validate:"required,min=2,max=100"`
	Email        string       `json:"email" validate:"required,email"`
	Phone        string       `json:"phone" validate:"required,min=10,phone"`
	Extension    string       `json:"extension,omitempty" validate:"max=20"`
	ProfilePhoto string       `json:"profilePhoto,omitempty" validate:"omitempty,url"`
	Password     string       `json:"password,omitempty" validate:"-"`
	Position     string       `json:"position" validate:"required,min=2,max=100"`
	VText        []VTextEntry `json:"vText" validate:"dive"`
	CompanyID    string       `json:"companyId" validate:"required"`

	// owner
	GlobalSettings []string `json:"globalSettings"`
	MetricAccess   bool     `json:"metricAccess"`

	// manager
	Permissions []string `json:"permissions"`

	// sale
	CommissionRate float64 `json:"commissionRate" validate:"gte=0,lte=100"`
	ManagerID      string  `json:"managerId" validate:"required_if=Role sale"`
}

// MarshalJSON emits the role-selected variant: common fields plus exactly the
// extra fields the record's role defines.
func (u NormalizedUser) MarshalJSON() ([]byte, error) {
	type common struct {
		Role         UserRole     `json:"role"`
		ID           string       `json:"id,omitempty"`
		Name         string       `json:"name"`
		FirstName    string       `json:"firstName"`
		LastName     string       `json:"lastName"`
		Email        string       `json:"email"`
		Phone        string       `json:"phone"`
		Extension    string       `json:"extension,omitempty"`
		ProfilePhoto string       `json:"profilePhoto,omitempty"`
		Password     string       `json:"password,omitempty"`
		Position     string       `json:"position"`
		VText        []VTextEntry `json:"vText"`
		CompanyID    string       `json:"companyId"`
	}

	c := common{
		Role:         u.Role,
		ID:           u.ID,
		Name:         u.Name,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		Extension:    u.Extension,
		ProfilePhoto: u.ProfilePhoto,
		Password:     u.Password,
		Position:     u.Position,
		VText:        u.VText,
		CompanyID:    u.CompanyID,
	}
	if c.VText == nil {
		c.VText = []VTextEntry{}
	}

	switch u.Role {
	case RoleOwner:
		return json.Marshal(struct {
			common
			GlobalSettings []string `json:"globalSettings"`
			MetricAccess   bool     `json:"metricAccess"`
		}{c, u.GlobalSettings, u.MetricAccess})
	case RoleManager:
		return json.Marshal(struct {
			common
			Permissions []string `json:"permissions"`
		}{c, u.Permissions})
	case RoleSale:
		return json.Marshal(struct {
			common
			CommissionRate float64 `json:"commissionRate"`
			ManagerID      string  `json:"managerId"`
		}{c, u.CommissionRate, u.ManagerID})
	default:
		return json.Marshal(c)
	}
}

// ---------------------------------------------------------------------------
// API responses
// ---------------------------------------------------------------------------

// CompanyDTO is the API representation of a company
type CompanyDTO struct {
	ID            uuid.UUID               `json:"id"`
	Name          string                  `json:"name"`
	Phone         string                  `json:"phone"`
	Email         string                  `json:"email"`
	Website       string                  `json:"website,omitempty"`
	Address       string                  `json:"address"`
	City          string                  `json:"city"`
	State         string                  `json:"state"`
	PostalCode    string                  `json:"postalCode"`
	Country       string                  `json:"country"`
	Description   string                  `json:"description,omitempty"`
	PBXURL        *PBXDomainRef           `json:"pbxUrl"`
	Configuration NormalizedConfiguration `json:"configuration"`
	UserCount     int                     `json:"userCount,omitempty"`
	CreatedAt     string                  `json:"createdAt"` // ISO 8601
	UpdatedAt     string                  `json:"updatedAt"` // ISO 8601
}

// UserDTO is the API representation of a user. The password hash is never
// exposed. Role-specific fields are omitted for non-matching roles.
type UserDTO struct {
	ID           uuid.UUID    `json:"id"`
	HighLevelID  string       `json:"highLevelId,omitempty"`
	Role         UserRole     `json:"role"`
	Name         string       `json:"name"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Extension    string       `json:"extension,omitempty"`
	ProfilePhoto string       `json:"profilePhoto,omitempty"`
	Position     string       `json:"position"`
	VText        []VTextEntry `json:"vText"`
	CompanyID    uuid.UUID    `json:"companyId"`
	CompanyName  string       `json:"companyName,omitempty"`

	GlobalSettings []string   `json:"globalSettings,omitempty"`
	MetricAccess   *bool      `json:"metricAccess,omitempty"`
	Permissions    []string   `json:"permissions,omitempty"`
	CommissionRate *float64   `json:"commissionRate,omitempty"`
	ManagerID      *uuid.UUID `json:"managerId,omitempty"`
	ManagerName    string     `json:"managerName,omitempty"`

	CreatedAt string `json:"createdAt"` // ISO 8601
	UpdatedAt string `json:"updatedAt"` // ISO 8601
}

// PBXDomainDTO is the API representation of a mirrored PBX domain
type PBXDomainDTO struct {
	DomainUUID  string  `json:"domain_uuid"`
	ParentUUID  *string `json:"domain_parent_uuid"`
	DomainName  string  `json:"domain_name"`
	Enabled     bool    `json:"domain_enabled"`
	Description string  `json:"domain_description,omitempty"`
	SyncedAt    string  `json:"syncedAt"` // ISO 8601
}

// UpdateStagesRequest replaces a company's pipeline stages
type UpdateStagesRequest struct {
	Stages []StageInput `json:"stages"`
}

// PaginatedResponse wraps list results with paging metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
