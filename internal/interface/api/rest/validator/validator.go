// Package validator checks request shapes at the HTTP boundary. The
// business predicates (email, password strength) live in
// internal/validation; this package layers request-specific rules on
// top and reports per-field messages the way clients expect them.
package validator

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"account-manager-api/internal/domain/query"
	"account-manager-api/internal/domain/user"
	"account-manager-api/internal/interface/api/rest/dto/auth"
	userDTO "account-manager-api/internal/interface/api/rest/dto/user"
	"account-manager-api/internal/validation"
)

const maxNameLen = 64

// ValidatePage parses ?page= and ?size= into a page request. Values
// out of range are left to query.Page.Normalize; only non-numeric
// input is an error.
func ValidatePage(page, size string) (query.Page, error) {
	pg := query.Page{}
	if page != "" {
		p, err := strconv.Atoi(page)
		if err != nil {
			return pg, errors.New("invalid page")
		}
		pg.Number = p
	}
	if size != "" {
		s, err := strconv.Atoi(size)
		if err != nil {
			return pg, errors.New("invalid page size")
		}
		pg.Size = s
	}

	return pg, nil
}

// ValidateSort parses ?sort= and ?order=. Field allow-listing happens
// in the repository; here we only normalize the direction.
func ValidateSort(field, order string) query.Sort {
	return query.Sort{
		Field: strings.TrimSpace(field),
		Desc:  strings.EqualFold(order, "desc"),
	}
}

func IsUUID(s string) (bool, uuid.UUID) {
	if !validation.IsID(s) {
		return false, uuid.Nil
	}
	id, err := uuid.Parse(s)

	return err == nil, id
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" {
		errs["email"] = "email is required"
	} else if !validation.IsEmail(email) {
		errs["email"] = "invalid email format"
	}

	if r.Password == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	return validateAccount(r.Email, r.Password, r.Name, "")
}

func ValidateCreateUser(r userDTO.CreateRequest) map[string]string {
	return validateAccount(r.Email, r.Password, r.Name, r.Role)
}

func ValidateUpdateUser(r userDTO.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	validateEmailField(errs, r.Email)
	validateNameField(errs, r.Name)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidatePasswordChange(r userDTO.PasswordRequest) map[string]string {
	errs := make(map[string]string)

	if r.CurrentPassword == "" {
		errs["current_password"] = "current_password is required"
	}
	if !validation.IsStrongPassword(r.NewPassword) {
		errs["new_password"] = "min 6 characters with an uppercase letter, a digit and a symbol"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateAccount(email, password, name, role string) map[string]string {
	errs := make(map[string]string)

	validateEmailField(errs, email)
	if !validation.IsStrongPassword(password) {
		errs["password"] = "min 6 characters with an uppercase letter, a digit and a symbol"
	}
	validateNameField(errs, name)
	if role != "" && !user.Role(role).Valid() {
		errs["role"] = "role must be USER or ADMIN"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateEmailField(errs map[string]string, email string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		errs["email"] = "email is required"
	} else if !validation.IsEmail(email) {
		errs["email"] = "invalid email format"
	}
}

func validateNameField(errs map[string]string, name string) {
	if l := utf8.RuneCountInString(strings.TrimSpace(name)); l > maxNameLen {
		errs["name"] = "name length must be at most 64 characters"
	}
}
