package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"contact-manager-api/internal/interface/api/rest/dto/auth"
	"contact-manager-api/internal/interface/api/rest/dto/contact"
	"contact-manager-api/pkg/cpf"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	defaultPerPage = 15
	maxPerPage     = 100
)

var (
	phoneRe = regexp.MustCompile(`^\+?[0-9() .-]{8,20}$`)
	ufRe    = regexp.MustCompile(`^[A-Za-z]{2}$`)
	cepRe   = regexp.MustCompile(`^\d{5}-?\d{3}$`)
)

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 1, errors.New("invalid page")
	}
	return p, nil
}

func ValidatePerPage(perPage string) (int, error) {
	if perPage == "" {
		return defaultPerPage, nil
	}
	p, err := strconv.Atoi(perPage)
	if err != nil || p < 1 || p > maxPerPage {
		return defaultPerPage, errors.New("invalid per_page")
	}
	return p, nil
}

func ValidateSort(sort string) (string, error) {
	switch sort {
	case "":
		return "asc", nil
	case "asc", "desc":
		return sort, nil
	default:
		return "asc", errors.New("sort must be asc or desc")
	}
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateContact(r contact.Request) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	if name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 128 {
		errs["name"] = "name length must be 2–128 characters"
	}

	if strings.TrimSpace(r.CPF) == "" {
		errs["cpf"] = "cpf is required"
	} else if !cpf.Valid(r.CPF) {
		errs["cpf"] = "invalid cpf"
	}

	if phone := strings.TrimSpace(r.Phone); phone == "" {
		errs["phone"] = "phone is required"
	} else if !phoneRe.MatchString(phone) {
		errs["phone"] = "invalid phone format"
	}

	validateAddressFields(errs, r.Street, r.Number, r.City, r.State, r.ZipCode)
	validateCoordinates(errs, r.Latitude, r.Longitude)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateContactUpdate checks only the fields present in the partial
// payload. Sending latitude without longitude (or vice versa) is
// rejected so coordinates always change as a pair.
func ValidateContactUpdate(r contact.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Name != nil {
		if l := utf8.RuneCountInString(strings.TrimSpace(*r.Name)); l < 2 || l > 128 {
			errs["name"] = "name length must be 2–128 characters"
		}
	}
	if r.Phone != nil && !phoneRe.MatchString(strings.TrimSpace(*r.Phone)) {
		errs["phone"] = "invalid phone format"
	}
	if r.Street != nil && strings.TrimSpace(*r.Street) == "" {
		errs["street"] = "street cannot be empty"
	}
	if r.Number != nil && strings.TrimSpace(*r.Number) == "" {
		errs["number"] = "number cannot be empty"
	}
	if r.City != nil && strings.TrimSpace(*r.City) == "" {
		errs["city"] = "city cannot be empty"
	}
	if r.State != nil && !ufRe.MatchString(strings.TrimSpace(*r.State)) {
		errs["state"] = "state must be a two-letter UF code"
	}
	if r.ZipCode != nil && !cepRe.MatchString(strings.TrimSpace(*r.ZipCode)) {
		errs["zip_code"] = "zip_code must be 8 digits"
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs["latitude"] = "latitude and longitude must be sent together"
	} else {
		validateCoordinates(errs, r.Latitude, r.Longitude)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateAddressFields(errs map[string]string, street, number, city, state, zipCode string) {
	if strings.TrimSpace(street) == "" {
		errs["street"] = "street is required"
	}
	if strings.TrimSpace(number) == "" {
		errs["number"] = "number is required"
	}
	if strings.TrimSpace(city) == "" {
		errs["city"] = "city is required"
	}
	if !ufRe.MatchString(strings.TrimSpace(state)) {
		errs["state"] = "state must be a two-letter UF code"
	}
	if !cepRe.MatchString(strings.TrimSpace(zipCode)) {
		errs["zip_code"] = "zip_code must be 8 digits"
	}
}

func validateCoordinates(errs map[string]string, lat, lng *float64) {
	if lat != nil && (*lat < -90 || *lat > 90) {
		errs["latitude"] = "latitude must be between -90 and 90"
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		errs["longitude"] = "longitude must be between -180 and 180"
	}
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	if name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
		errs["name"] = "name length must be 2–64 characters"
	}

	validateEmail(errs, r.Email)
	validatePassword(errs, r.Password)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	validateEmail(errs, r.Email)
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateForgotPassword(r auth.ForgotPasswordRequest) map[string]string {
	errs := make(map[string]string)

	validateEmail(errs, r.Email)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateResetPassword(r auth.ResetPasswordRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Token) == "" {
		errs["token"] = "token is required"
	}
	validatePassword(errs, r.Password)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateEmail(errs map[string]string, email string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}
}

func validatePassword(errs map[string]string, password string) {
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}
}
