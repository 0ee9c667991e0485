// Package validation implements the record validation and normalization
// engine behind the company and user admin endpoints.
//
// Company records are validated against a flat schema. User records are a
// tagged union over the role field: the record's own role value selects the
// schema variant (owner, manager, sale), and an absent or unknown role is
// rejected outright. Validation never stops at the first problem; callers
// get every violated field in one pass so the console can flag all invalid
// tabs at once.
//
// Validation is pure: no I/O, no shared state, safe for concurrent use.
package validation

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Mode distinguishes create from edit validation. Password is required only
// when creating a record; an edit may omit it to keep the stored one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// FieldErrors maps a field path (e.g. "configuration.theme.base1",
// "vText[0].email") to a human-readable message.
type FieldErrors map[string]string

// Validator validates and normalizes company and user records
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with all custom rules registered
func New() *Validator {
	v := validator.New()

	// Report field paths using JSON names so errors line up with the wire
	// shape the console submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Optional leading +, then digits, spaces, hyphens, and parentheses only
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	// NNNNN or NNNNN-NNNN
	mustRegister(v, "uspostal", func(fl validator.FieldLevel) bool {
		return postalPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidateCompany normalizes and validates a company form payload.
// On success the returned record is canonical: strings trimmed, website
// scheme-prefixed. On failure every violated field is reported.
func (val *Validator) ValidateCompany(in *domain.CompanyInput) (*domain.NormalizedCompany, FieldErrors) {
	out := normalizeCompany(in)

	errs := val.check(out)

	// The PBX reference is nullable, but a present reference must at least
	// identify a domain.
	if out.PBXURL != nil {
		if strings.TrimSpace(out.PBXURL.DomainUUID) == "" {
			errs.add("pbxUrl.domain_uuid", "This field is required")
		}
		if strings.TrimSpace(out.PBXURL.DomainName) == "" {
			errs.add("pbxUrl.domain_name", "This field is required")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// ValidateUser normalizes and validates a user form payload against the
// schema variant selected by the record's own role tag. An absent or unknown
// role fails immediately with a single top-level error and no field-level
// checks are attempted.
func (val *Validator) ValidateUser(in *domain.UserInput, mode Mode) (*domain.NormalizedUser, FieldErrors) {
	role := domain.UserRole(strings.TrimSpace(in.Role))
	if !domain.KnownRole(role) {
		return nil, FieldErrors{"role": "Role must be one of owner, manager, sale"}
	}

	errs := FieldErrors{}
	out := normalizeUser(in, role, errs)

	for path, msg := range val.check(out) {
		if _, taken := errs[path]; !taken {
			errs[path] = msg
		}
	}

	checkPassword(out.Password, mode, errs)

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// ValidateStages validates a standalone stage list, as submitted by the
// pipeline editor. Paths are reported relative to the request body.
func (val *Validator) ValidateStages(in []domain.StageInput) ([]domain.NormalizedStage, FieldErrors) {
	wrapper := struct {
		Stages []domain.NormalizedStage `json:"stages" validate:"dive"`
	}{
		Stages: make([]domain.NormalizedStage, len(in)),
	}
	for i, s := range in {
		wrapper.Stages[i] = domain.NormalizedStage{
			Name:  strings.TrimSpace(s.Name),
			Show:  s.Show,
			Order: s.Order,
		}
	}

	if errs := val.check(&wrapper); len(errs) > 0 {
		return nil, errs
	}
	return wrapper.Stages, nil
}

// normalizeCompany trims every string field and applies the website scheme
// prefix before any constraint runs.
func normalizeCompany(in *domain.CompanyInput) *domain.NormalizedCompany {
	out := &domain.NormalizedCompany{
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		Website:     normalizeWebsite(in.Website),
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		State:       strings.TrimSpace(in.State),
		PostalCode:  strings.TrimSpace(in.PostalCode),
		Country:     strings.TrimSpace(in.Country),
		Description: strings.TrimSpace(in.Description),
	}

	if in.PBXURL != nil {
		ref := *in.PBXURL
		out.PBXURL = &ref
	}

	out.Configuration.Theme = domain.NormalizedTheme{
		Base1:        strings.TrimSpace(in.Configuration.Theme.Base1),
		Base2:        strings.TrimSpace(in.Configuration.Theme.Base2),
		Highlighting: strings.TrimSpace(in.Configuration.Theme.Highlighting),
		CallToAction: strings.TrimSpace(in.Configuration.Theme.CallToAction),
		Logo:         strings.TrimSpace(in.Configuration.Theme.Logo),
	}
	out.Configuration.Stages = make([]domain.NormalizedStage, len(in.Configuration.Stages))
	for i, s := range in.Configuration.Stages {
		out.Configuration.Stages[i] = domain.NormalizedStage{
			Name:  strings.TrimSpace(s.Name),
			Show:  s.Show,
			Order: s.Order,
		}
	}

	return out
}

// normalizeWebsite leaves an empty website empty and prefixes everything else
// with https:// unless a scheme is already present.
func normalizeWebsite(website string) string {
	w := strings.TrimSpace(website)
	if w == "" {
		return ""
	}
	if strings.HasPrefix(w, "http://") || strings.HasPrefix(w, "https://") {
		return w
	}
	return "https://" + w
}

// normalizeUser builds the canonical record for the selected role variant.
// The display name is always re-derived from firstName/lastName; the name the
// console submitted is never trusted. Coercion failures (a non-numeric
// commission rate) land in errs so they surface as field errors rather than
// silently becoming defaults.
func normalizeUser(in *domain.UserInput, role domain.UserRole, errs FieldErrors) *domain.NormalizedUser {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)

	out := &domain.NormalizedUser{
		Role:         role,
		ID:           strings.TrimSpace(in.ID),
		Name:         strings.TrimSpace(first + " " + last),
		FirstName:    first,
		LastName:     last,
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Extension:    strings.TrimSpace(in.Extension),
		ProfilePhoto: strings.TrimSpace(in.ProfilePhoto),
		Password:     in.Password,
		Position:     strings.TrimSpace(in.Position),
		VText:        make([]domain.VTextEntry, len(in.VText)),
		CompanyID:    strings.TrimSpace(in.CompanyID),
	}
	for i, entry := range in.VText {
		out.VText[i] = domain.VTextEntry{
			Email: strings.TrimSpace(entry.Email),
			Phone: strings.TrimSpace(entry.Phone),
		}
	}

	switch role {
	case domain.RoleOwner:
		out.GlobalSettings = in.GlobalSettings
		if out.GlobalSettings == nil {
			out.GlobalSettings = []string{}
		}
		out.MetricAccess = true
		if in.MetricAccess != nil {
			out.MetricAccess = *in.MetricAccess
		}

	case domain.RoleManager:
		out.Permissions = in.Permissions
		if out.Permissions == nil {
			out.Permissions = []string{}
		}

	case domain.RoleSale:
		if in.CommissionRate.Invalid() {
			errs.add("commissionRate", "Commission rate must be a number")
		} else {
			out.CommissionRate = in.CommissionRate.Float64()
		}
		out.ManagerID = strings.TrimSpace(in.ManagerID)
	}

	return out
}

// checkPassword applies the password policy. Passwords are required on
// create; in edit mode an empty password means "keep the current one", but a
// submitted password is still complexity-checked.
func checkPassword(password string, mode Mode, errs FieldErrors) {
	if password == "" {
		if mode == ModeCreate {
			errs.add("password", "Password is required")
		}
		return
	}

	if len(password) < 8 {
		errs.add("password", "Password must be at least 8 characters")
		return
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		errs.add("password", "Password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
}

// check runs struct validation and translates the result into field errors
func (val *Validator) check(record interface{}) FieldErrors {
	errs := FieldErrors{}

	err := val.validate.Struct(record)
	if err == nil {
		return errs
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		// A broken schema definition is a programmer error, not input error
		panic(err)
	}

	for _, fe := range ve {
		errs.add(fieldPath(fe), messageFor(fe))
	}
	return errs
}

func (e FieldErrors) add(path, message string) {
	if _, taken := e[path]; !taken {
		e[path] = message
	}
}
