package users

import (
	"regexp"
	"strings"

	"github.com/dvergara2005/shopkeeper/internal/validate"
)

// Registration is the input for creating an account.
type Registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=20"`
}

// ProfilePatch is the input for editing the active account.
type ProfilePatch struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// ValidationError aggregates every field violation so the caller can render
// the full list, the way the original form did.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Password character-class policy, same classes the original enforced.
var (
	passwordLowercase = regexp.MustCompile(`[a-z]`)
	passwordUppercase = regexp.MustCompile(`[A-Z]`)
	passwordDigit     = regexp.MustCompile(`[0-9]`)
	passwordSpecial   = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

func passwordProblems(password string) []string {
	if password == "" {
		// "required" already reported by the tag validation.
		return nil
	}

	var problems []string
	if !passwordLowercase.MatchString(password) {
		problems = append(problems, "Password must contain at least one lowercase letter.")
	}
	if !passwordUppercase.MatchString(password) {
		problems = append(problems, "Password must contain at least one uppercase letter.")
	}
	if !passwordDigit.MatchString(password) {
		problems = append(problems, "Password must contain at least one digit.")
	}
	if !passwordSpecial.MatchString(password) {
		problems = append(problems, "Password must contain at least one special character (e.g. !@#$%^&*).")
	}
	return problems
}

func (r Registration) problems() []string {
	problems := validate.Problems(r)
	problems = append(problems, passwordProblems(r.Password)...)
	return problems
}

func (p ProfilePatch) problems() []string {
	return validate.Problems(p)
}
