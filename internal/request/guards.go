package request

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/quillapp/quill-server/internal/errors"
	"github.com/quillapp/quill-server/internal/id"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 72
)

// emailShape is deliberately loose: something before an @, something
// after it, and a dot-separated suffix. Real validation happens when
// mail bounces.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RequireFields fails with a missing-field error at the given status
// for the first name absent from the body. Presence is key-existence,
// not truthiness: an explicit null or empty string satisfies the guard.
func RequireFields(status int, names ...string) Guard {
	return func(_ context.Context, rc *Context) error {
		for _, name := range names {
			if _, ok := rc.Body[name]; !ok {
				err := errors.MissingField(name)
				if status != http.StatusBadRequest {
					return err.WithStatus(status)
				}
				return err
			}
		}
		return nil
	}
}

// ValidateID checks the route id parameter and the body id, whichever
// are present, against the identifier shape.
func ValidateID(_ context.Context, rc *Context) error {
	if rc.ParamID != "" && !id.IsValid(rc.ParamID) {
		return errors.InvalidInput("Invalid `id` parameter.")
	}
	if bodyID, ok := rc.Body["id"]; ok {
		s, isString := bodyID.(string)
		if !isString || !id.IsValid(s) {
			return errors.InvalidInput("Invalid `id` parameter.")
		}
	}
	return nil
}

// MatchingIDs requires the route id and body id to both be present and
// equal. Rejects client bugs where URL and body disagree on the target.
func MatchingIDs(_ context.Context, rc *Context) error {
	bodyID, _ := rc.Body["id"].(string)
	if rc.ParamID == "" || bodyID == "" || rc.ParamID != bodyID {
		return errors.InvalidInput("Request body `id` and parameter `id` must be equivalent.")
	}
	return nil
}

// ValidateRegistration enforces the account-creation rules: email and
// password must be strings, the email must look like an address, the
// password must be 8–72 characters, and neither may begin or end with
// whitespace.
func ValidateRegistration(_ context.Context, rc *Context) error {
	email, emailOK := rc.Body["email"].(string)
	password, passwordOK := rc.Body["password"].(string)
	if !emailOK || !passwordOK {
		return errors.InvalidInput("`email` and `password` must be of type string.")
	}
	if !emailShape.MatchString(email) {
		return errors.InvalidInput("That is not a valid email.")
	}
	if len(password) < passwordMinLength || len(password) > passwordMaxLength {
		return errors.InvalidInput("Password must be between 8 and 72 characters long.")
	}
	if email != strings.TrimSpace(email) || password != strings.TrimSpace(password) {
		return errors.InvalidInput("email and password cannot begin or end with a space.")
	}
	return nil
}
