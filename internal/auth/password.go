package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hashed, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}

// PasswordPolicy returns the reasons a password is rejected, or nothing.
// attrs are the account's own values (username, email, names) a password
// must not resemble.
type PasswordPolicy func(password string, attrs ...string) []string

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "12345678": {}, "123456789": {},
	"qwerty123": {}, "iloveyou": {}, "admin123": {}, "11111111": {},
	"sunshine": {}, "princess": {}, "football": {},
	"passw0rd": {}, "welcome1": {}, "bismillah": {}, "indonesia": {},
}

// DefaultPasswordPolicy enforces a minimum length, rejects all-digit and
// common passwords and passwords too close to the account's attributes.
func DefaultPasswordPolicy(minLength int) PasswordPolicy {
	return func(password string, attrs ...string) []string {
		var problems []string

		if len([]rune(password)) < minLength {
			problems = append(problems, fmt.Sprintf(
				"This password is too short. It must contain at least %d characters.", minLength))
		}
		if isNumeric(password) {
			problems = append(problems, "This password is entirely numeric.")
		}
		if _, ok := commonPasswords[strings.ToLower(password)]; ok {
			problems = append(problems, "This password is too common.")
		}
		for _, attr := range attrs {
			if similar(password, attr) {
				problems = append(problems, "The password is too similar to your personal information.")
				break
			}
		}
		return problems
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func similar(password, attr string) bool {
	attr = strings.ToLower(strings.TrimSpace(attr))
	if i := strings.IndexByte(attr, '@'); i > 0 {
		attr = attr[:i]
	}
	if len(attr) < 3 {
		return false
	}
	p := strings.ToLower(password)
	return strings.Contains(p, attr) || strings.Contains(attr, p)
}
