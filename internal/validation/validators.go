// Package validation holds the pure input validators that run before any
// remote call is issued. Validators accumulate one message per offending
// field instead of stopping at the first violation.
package validation

import (
	"regexp"
	"strings"

	"screamy/internal/domain/user"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

type SignupInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
	Handle          string `json:"handle"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateSignup checks every signup field and reports all violations.
func ValidateSignup(in SignupInput) (map[string]string, bool) {
	errors := map[string]string{}

	if isEmpty(in.Email) {
		errors["email"] = "Must not be empty"
	} else if !emailRegexp.MatchString(in.Email) {
		errors["email"] = "Must be a valid email address"
	}
	if isEmpty(in.Password) {
		errors["password"] = "Must not be empty"
	}
	if in.ConfirmPassword != in.Password {
		errors["confirmpassword"] = "Passwords must match"
	}
	if isEmpty(in.Handle) {
		errors["handle"] = "Must not be empty"
	}

	return errors, len(errors) == 0
}

// ValidateLogin only checks that both fields are present; existence of the
// account is deliberately not checked here.
func ValidateLogin(in LoginInput) (map[string]string, bool) {
	errors := map[string]string{}

	if isEmpty(in.Email) {
		errors["email"] = "Must not be empty"
	}
	if isEmpty(in.Password) {
		errors["password"] = "Must not be empty"
	}

	return errors, len(errors) == 0
}

type DetailsInput struct {
	Bio      string `json:"bio"`
	Website  string `json:"website"`
	Location string `json:"location"`
}

// ReduceUserDetails keeps only the whitelisted profile fields, trimming
// values and dropping empty ones. A website submitted without a scheme gets
// an http:// prefix.
func ReduceUserDetails(in DetailsInput) user.Details {
	details := user.Details{}

	if bio := strings.TrimSpace(in.Bio); bio != "" {
		details.Bio = bio
	}
	if website := strings.TrimSpace(in.Website); website != "" {
		if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
			website = "http://" + website
		}
		details.Website = website
	}
	if location := strings.TrimSpace(in.Location); location != "" {
		details.Location = location
	}

	return details
}

func isEmpty(value string) bool {
	return strings.TrimSpace(value) == ""
}
