// Package mapper converts database models into API DTOs
package mapper

import (
	"time"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
)

// timeFormat is the ISO 8601 layout used for all API timestamps
const timeFormat = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// ToCompanyDTO converts a company model to its API representation
func ToCompanyDTO(c *domain.Company, userCount int) domain.CompanyDTO {
	dto := domain.CompanyDTO{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Website:     c.Website,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		PostalCode:  c.PostalCode,
		Country:     c.Country,
		Description: c.Description,
		UserCount:   userCount,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}

	if c.PBXDomain.DomainUUID != "" {
		ref := c.PBXDomain
		dto.PBXURL = &ref
	}

	dto.Configuration.Theme = domain.NormalizedTheme(c.Configuration.Theme)
	dto.Configuration.Stages = make([]domain.NormalizedStage, len(c.Configuration.Stages))
	for i, s := range c.Configuration.Stages {
		dto.Configuration.Stages[i] = domain.NormalizedStage(s)
	}

	return dto
}

// ToCompanyDTOs converts a list of companies without user counts
func ToCompanyDTOs(companies []domain.Company) []domain.CompanyDTO {
	dtos := make([]domain.CompanyDTO, len(companies))
	for i := range companies {
		dtos[i] = ToCompanyDTO(&companies[i], 0)
	}
	return dtos
}

// ToUserDTO converts a user model to its API representation. Role-specific
// fields are populated only for the matching role; the password hash is
// never exposed.
func ToUserDTO(u *domain.User) domain.UserDTO {
	dto := domain.UserDTO{
		ID:           u.ID,
		HighLevelID:  u.HighLevelID,
		Role:         u.Role,
		Name:         u.Name,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		Extension:    u.Extension,
		ProfilePhoto: u.ProfilePhoto,
		Position:     u.Position,
		VText:        u.VText,
		CompanyID:    u.CompanyID,
		CreatedAt:    formatTime(u.CreatedAt),
		UpdatedAt:    formatTime(u.UpdatedAt),
	}
	if dto.VText == nil {
		dto.VText = []domain.VTextEntry{}
	}
	if u.Company != nil {
		dto.CompanyName = u.Company.Name
	}

	switch u.Role {
	case domain.RoleOwner:
		settings := []string(u.GlobalSettings)
		if settings == nil {
			settings = []string{}
		}
		dto.GlobalSettings = settings
		access := u.MetricAccess
		dto.MetricAccess = &access

	case domain.RoleManager:
		perms := []string(u.Permissions)
		if perms == nil {
			perms = []string{}
		}
		dto.Permissions = perms

	case domain.RoleSale:
		rate := u.CommissionRate
		dto.CommissionRate = &rate
		dto.ManagerID = u.ManagerID
		if u.Manager != nil {
			dto.ManagerName = u.Manager.FullName()
		}
	}

	return dto
}

// ToUserDTOs converts a list of users
func ToUserDTOs(users []domain.User) []domain.UserDTO {
	dtos := make([]domain.UserDTO, len(users))
	for i := range users {
		dtos[i] = ToUserDTO(&users[i])
	}
	return dtos
}

// ToPBXDomainDTO converts a mirrored PBX domain to its API representation
func ToPBXDomainDTO(d *domain.PBXDomain) domain.PBXDomainDTO {
	return domain.PBXDomainDTO{
		DomainUUID:  d.DomainUUID,
		ParentUUID:  d.ParentUUID,
		DomainName:  d.DomainName,
		Enabled:     d.Enabled,
		Description: d.Description,
		SyncedAt:    formatTime(d.SyncedAt),
	}
}

// ToPBXDomainDTOs converts a list of mirrored PBX domains
func ToPBXDomainDTOs(domains []domain.PBXDomain) []domain.PBXDomainDTO {
	dtos := make([]domain.PBXDomainDTO, len(domains))
	for i := range domains {
		dtos[i] = ToPBXDomainDTO(&domains[i])
	}
	return dtos
}
