package validation_test

import (
	"testing"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/devNevtis/salesToolsAdminSpace/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCompanyInput() *domain.CompanyInput {
	return &domain.CompanyInput{
		Name:       "Nevtis Corp",
		Phone:      "+1 (949) 555-0134",
		Email:      "admin@nevtis.com",
		Website:    "nevtis.com",
		Address:    "123 Harbor Blvd",
		City:       "Irvine",
		State:      "California",
		PostalCode: "92618",
		Country:    "USA",
		Configuration: domain.ConfigurationInput{
			Theme: domain.ThemeInput{
				Base1:        "#1a2b3c",
				Base2:        "#ffffff",
				Highlighting: "#ff9900",
				CallToAction: "#00cc66",
			},
			Stages: []domain.StageInput{
				{Name: "Lead", Show: true, Order: 1},
				{Name: "Won", Show: true, Order: 2},
			},
		},
	}
}

func validOwnerInput() *domain.UserInput {
	return &domain.UserInput{
		Role:      "owner",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@nevtis.com",
		Phone:     "9495550134",
		Password:  "Sup3rSecret",
		Position:  "CEO",
		CompanyID: "6f1e8a44-9c1d-4a1a-9a0f-3f2b7c1d5e99",
	}
}

func TestValidateCompanyWebsiteNormalization(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		website string
		want    string
	}{
		{"empty stays empty", "", ""},
		{"bare host gets https prefix", "example.com", "https://example.com"},
		{"https preserved", "https://example.com", "https://example.com"},
		{"http preserved", "http://example.com", "http://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCompanyInput()
			in.Website = tt.website

			out, errs := v.ValidateCompany(in)
			require.Empty(t, errs)
			assert.Equal(t, tt.want, out.Website)
		})
	}
}

func TestValidateCompanyTrimsStrings(t *testing.T) {
	v := validation.New()

	in := validCompanyInput()
	in.Name = "  Nevtis Corp  "
	in.City = "\tIrvine\n"

	out, errs := v.ValidateCompany(in)
	require.Empty(t, errs)
	assert.Equal(t, "Nevtis Corp", out.Name)
	assert.Equal(t, "Irvine", out.City)
}

func TestValidateCompanyCollectsAllErrors(t *testing.T) {
	v := validation.New()

	in := validCompanyInput()
	in.Name = "X"
	in.Email = "not-an-email"
	in.PostalCode = "9261"

	out, errs := v.ValidateCompany(in)
	assert.Nil(t, out)
	require.Len(t, errs, 3)
	assert.Equal(t, "Must be at least 2 characters", errs["name"])
	assert.Equal(t, "Invalid email address", errs["email"])
	assert.Equal(t, "Invalid postal code", errs["postalCode"])
}

func TestValidateCompanyNestedPaths(t *testing.T) {
	v := validation.New()

	in := validCompanyInput()
	in.Configuration.Theme.Base1 = "blue"
	in.Configuration.Stages[1].Order = 0

	out, errs := v.ValidateCompany(in)
	assert.Nil(t, out)
	assert.Equal(t, "Invalid hex color", errs["configuration.theme.base1"])
	assert.Equal(t, "Must be at least 1", errs["configuration.stages[1].order"])
}

func TestValidateCompanyPhoneFormat(t *testing.T) {
	v := validation.New()

	in := validCompanyInput()
	in.Phone = "call me maybe"

	out, errs := v.ValidateCompany(in)
	assert.Nil(t, out)
	assert.Equal(t, "Invalid phone format", errs["phone"])
}

func TestValidateCompanyExtendedPostalCode(t *testing.T) {
	v := validation.New()

	in := validCompanyInput()
	in.PostalCode = "92618-1234"

	_, errs := v.ValidateCompany(in)
	assert.Empty(t, errs)
}

func TestValidateCompanyPartialPBXRef(t *testing.T) {
	v := validation.New()

	in := validCompanyInput()
	in.PBXURL = &domain.PBXDomainRef{DomainName: "pbx.nevtis.com"}

	out, errs := v.ValidateCompany(in)
	assert.Nil(t, out)
	assert.Equal(t, "This field is required", errs["pbxUrl.domain_uuid"])
}

func TestValidateCompanyIdempotent(t *testing.T) {
	v := validation.New()

	first, errs := v.ValidateCompany(validCompanyInput())
	require.Empty(t, errs)

	again := &domain.CompanyInput{
		Name:       first.Name,
		Phone:      first.Phone,
		Email:      first.Email,
		Website:    first.Website,
		Address:    first.Address,
		City:       first.City,
		State:      first.State,
		PostalCode: first.PostalCode,
		Country:    first.Country,
	}
	again.Configuration.Theme = domain.ThemeInput(first.Configuration.Theme)
	for _, s := range first.Configuration.Stages {
		again.Configuration.Stages = append(again.Configuration.Stages, domain.StageInput(s))
	}

	second, errs := v.ValidateCompany(again)
	require.Empty(t, errs)
	assert.Equal(t, first, second)
}

func TestValidateUserDerivesName(t *testing.T) {
	v := validation.New()

	in := validOwnerInput()
	in.Name = "Someone Else" // submitted name is never trusted
	in.FirstName = "  Ada "
	in.LastName = " Lovelace "

	out, errs := v.ValidateUser(in, validation.ModeCreate)
	require.Empty(t, errs)
	assert.Equal(t, "Ada Lovelace", out.Name)
	assert.Equal(t, "Ada", out.FirstName)
	assert.Equal(t, "Lovelace", out.LastName)
}

func TestValidateUserEmptyNamesReported(t *testing.T) {
	v := validation.New()

	in := validOwnerInput()
	in.FirstName = "   "
	in.LastName = ""

	out, errs := v.ValidateUser(in, validation.ModeCreate)
	assert.Nil(t, out)
	assert.Equal(t, "Must be at least 2 characters", errs["name"])
	assert.Equal(t, "This field is required", errs["firstName"])
	assert.Equal(t, "This field is required", errs["lastName"])
}

func TestValidateUserUnknownRole(t *testing.T) {
	v := validation.New()

	for _, role := range []string{"", "superadmin", "Owner "} {
		in := validOwnerInput()
		in.Role = role
		in.Email = "" // must not be reported; role check wins outright

		out, errs := v.ValidateUser(in, validation.ModeCreate)
		assert.Nil(t, out)
		require.Len(t, errs, 1, "role %q", role)
		assert.Equal(t, "Role must be one of owner, manager, sale", errs["role"])
	}
}

func TestValidateUserRoleIsTrimmed(t *testing.T) {
	v := validation.New()

	in := validOwnerInput()
	in.Role = " owner "

	out, errs := v.ValidateUser(in, validation.ModeCreate)
	require.Empty(t, errs)
	assert.Equal(t, domain.RoleOwner, out.Role)
}

func TestValidateUserOwnerDefaults(t *testing.T) {
	v := validation.New()

	out, errs := v.ValidateUser(validOwnerInput(), validation.ModeCreate)
	require.Empty(t, errs)
	assert.Equal(t, []string{}, out.GlobalSettings)
	assert.True(t, out.MetricAccess)
	assert.Equal(t, []domain.VTextEntry{}, out.VText)
	assert.Empty(t, out.ManagerID)
}

func TestValidateUserOwnerMetricAccessExplicitFalse(t *testing.T) {
	v := validation.New()

	off := false
	in := validOwnerInput()
	in.MetricAccess = &off

	out, errs := v.ValidateUser(in, validation.ModeCreate)
	require.Empty(t, errs)
	assert.False(t, out.MetricAccess)
}

func TestValidateUserManagerDefaults(t *testing.T) {
	v := validation.New()

	in := validOwnerInput()
	in.Role = "manager"
	in.Position = "Sales Manager"

	out, errs := v.ValidateUser(in, validation.ModeCreate)
	require.Empty(t, errs)
	assert.Equal(t, []string{}, out.Permissions)
}

func TestValidateUserSaleRequiresManager(t *testing.T) {
	v := validation.New()

	in := validOwnerInput()
	in.Role = "sale"
	in.Position = "Account Executive"

	out, errs := v.ValidateUser(in, validation.ModeCreate)
	assert.Nil(t, out)
	assert.Equal(t, "Manager is required", errs["managerId"])
}

func TestValidateUserCommissionRateCoercion(t *testing.T) {
	v := validation.New()

	in := validOwnerInput()
	in.Role = "sale"
	in.Position = "Account Executive"
	in.ManagerID = "7a2f9b55-1d3e-4c2b-8b1a-4e3c8d2f6a00"

	t.Run("numeric string coerced", func(t *testing.T) {
		payload := *in
		payload.CommissionRate = mustNumber(t, `"42.5"`)

		out, errs := v.ValidateUser(&payload, validation.ModeCreate)
		require.Empty(t, errs)
		assert.Equal(t, 42.5, out.CommissionRate)
	})

	t.Run("non-numeric string is a field error", func(t *testing.T) {
		payload := *in
		payload.CommissionRate = mustNumber(t, `"abc"`)

		out, errs := v.ValidateUser(&payload, validation.ModeCreate)
		assert.Nil(t, out)
		assert.Equal(t, "Commission rate must be a number", errs["commissionRate"])
	})

	t.Run("omitted defaults to zero", func(t *testing.T) {
		payload := *in

		out, errs := v.ValidateUser(&payload, validation.ModeCreate)
		require.Empty(t, errs)
		assert.Zero(t, out.CommissionRate)
	})

	t.Run("over 100 rejected", func(t *testing.T) {
		payload := *in
		payload.CommissionRate = domain.NumberFrom(120)

		out, errs := v.ValidateUser(&payload, validation.ModeCreate)
		assert.Nil(t, out)
		assert.Equal(t, "Commission rate cannot exceed 100%", errs["commissionRate"])
	})
}

func TestValidateUserPasswordPolicy(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name     string
		password string
		mode     validation.Mode
		wantErr  string
	}{
		{"required on create", "", validation.ModeCreate, "Password is required"},
		{"optional on edit", "", validation.ModeEdit, ""},
		{"too short", "Ab1", validation.ModeCreate, "Password must be at least 8 characters"},
		{"missing digit", "Abcdefgh", validation.ModeCreate, "Password must contain at least one uppercase letter, one lowercase letter, and one number"},
		{"missing upper", "abcdefg1", validation.ModeEdit, "Password must contain at least one uppercase letter, one lowercase letter, and one number"},
		{"complex accepted", "Sup3rSecret", validation.ModeEdit, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validOwnerInput()
			in.Password = tt.password

			_, errs := v.ValidateUser(in, tt.mode)
			if tt.wantErr == "" {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, tt.wantErr, errs["password"])
			}
		})
	}
}

func TestValidateUserVTextEntries(t *testing.T) {
	v := validation.New()

	in := validOwnerInput()
	in.VText = []domain.VTextEntry{
		{Email: "alt@nevtis.com", Phone: "9495550199"},
		{Email: "bogus", Phone: ""},
	}

	out, errs := v.ValidateUser(in, validation.ModeCreate)
	assert.Nil(t, out)
	assert.Equal(t, "Invalid email address", errs["vText[1].email"])
	assert.Equal(t, "This field is required", errs["vText[1].phone"])
}

func TestValidateUserIdempotent(t *testing.T) {
	v := validation.New()

	in := validOwnerInput()
	in.FirstName = "  Ada "
	first, errs := v.ValidateUser(in, validation.ModeCreate)
	require.Empty(t, errs)

	again := &domain.UserInput{
		Role:           string(first.Role),
		Name:           first.Name,
		FirstName:      first.FirstName,
		LastName:       first.LastName,
		Email:          first.Email,
		Phone:          first.Phone,
		Password:       first.Password,
		Position:       first.Position,
		VText:          first.VText,
		CompanyID:      first.CompanyID,
		GlobalSettings: first.GlobalSettings,
		MetricAccess:   &first.MetricAccess,
	}

	second, errs := v.ValidateUser(again, validation.ModeCreate)
	require.Empty(t, errs)
	assert.Equal(t, first, second)
}

func mustNumber(t *testing.T, raw string) domain.Number {
	t.Helper()
	var n domain.Number
	require.NoError(t, n.UnmarshalJSON([]byte(raw)))
	return n
}
