package request

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillapp/quill-server/internal/errors"
)

func requireDomainError(t *testing.T, err error, code errors.Code, status int) *errors.Error {
	t.Helper()

	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
	assert.Equal(t, status, domainErr.HTTPStatus())
	return domainErr
}

func TestRequireFields(t *testing.T) {
	ctx := context.Background()

	t.Run("all present", func(t *testing.T) {
		rc := &Context{Body: map[string]any{"name": "Work", "parent": nil}}
		err := Run(ctx, rc, RequireFields(http.StatusBadRequest, "name", "parent"))
		assert.NoError(t, err)
	})

	t.Run("presence is key-existence, not truthiness", func(t *testing.T) {
		rc := &Context{Body: map[string]any{"title": "", "document": nil}}
		err := Run(ctx, rc, RequireFields(http.StatusBadRequest, "title", "document"))
		assert.NoError(t, err)
	})

	t.Run("first missing key reported", func(t *testing.T) {
		rc := &Context{Body: map[string]any{"email": "a@b.com"}}
		err := Run(ctx, rc, RequireFields(http.StatusBadRequest, "email", "password", "firstName"))
		domainErr := requireDomainError(t, err, errors.CodeMissingField, http.StatusBadRequest)
		assert.Equal(t, "Missing `password` in request body.", domainErr.Message)
	})

	t.Run("status override", func(t *testing.T) {
		rc := &Context{Body: map[string]any{}}
		err := Run(ctx, rc, RequireFields(http.StatusUnprocessableEntity, "email"))
		requireDomainError(t, err, errors.CodeMissingField, http.StatusUnprocessableEntity)
	})
}

func TestValidateID(t *testing.T) {
	ctx := context.Background()

	t.Run("valid ids pass", func(t *testing.T) {
		rc := &Context{
			ParamID: "000000000000000000000001",
			Body:    map[string]any{"id": "000000000000000000000001"},
		}
		assert.NoError(t, ValidateID(ctx, rc))
	})

	t.Run("absent ids pass", func(t *testing.T) {
		rc := &Context{Body: map[string]any{}}
		assert.NoError(t, ValidateID(ctx, rc))
	})

	t.Run("bad route id", func(t *testing.T) {
		rc := &Context{ParamID: "not-an-id", Body: map[string]any{}}
		err := ValidateID(ctx, rc)
		requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)
	})

	t.Run("bad body id", func(t *testing.T) {
		rc := &Context{Body: map[string]any{"id": "00000000000000000000000g"}}
		err := ValidateID(ctx, rc)
		requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)
	})

	t.Run("non-string body id", func(t *testing.T) {
		rc := &Context{Body: map[string]any{"id": float64(42)}}
		err := ValidateID(ctx, rc)
		requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)
	})
}

func TestMatchingIDs(t *testing.T) {
	ctx := context.Background()
	validID := "000000000000000000000001"

	t.Run("equal ids pass", func(t *testing.T) {
		rc := &Context{ParamID: validID, Body: map[string]any{"id": validID}}
		assert.NoError(t, MatchingIDs(ctx, rc))
	})

	cases := map[string]*Context{
		"body id missing":  {ParamID: validID, Body: map[string]any{}},
		"route id missing": {Body: map[string]any{"id": validID}},
		"ids differ":       {ParamID: validID, Body: map[string]any{"id": "000000000000000000000002"}},
	}
	for name, rc := range cases {
		t.Run(name, func(t *testing.T) {
			err := MatchingIDs(ctx, rc)
			domainErr := requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)
			assert.Equal(t, "Request body `id` and parameter `id` must be equivalent.", domainErr.Message)
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	ctx := context.Background()

	valid := func() map[string]any {
		return map[string]any{"email": "user@example.com", "password": "password8"}
	}

	t.Run("valid registration passes", func(t *testing.T) {
		rc := &Context{Body: valid()}
		assert.NoError(t, ValidateRegistration(ctx, rc))
	})

	t.Run("password boundaries", func(t *testing.T) {
		rc := &Context{Body: valid()}
		rc.Body["password"] = strings.Repeat("a", 8)
		assert.NoError(t, ValidateRegistration(ctx, rc), "length 8 is accepted")

		rc.Body["password"] = strings.Repeat("a", 72)
		assert.NoError(t, ValidateRegistration(ctx, rc), "length 72 is accepted")

		rc.Body["password"] = strings.Repeat("a", 7)
		err := ValidateRegistration(ctx, rc)
		requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)

		rc.Body["password"] = strings.Repeat("a", 73)
		err = ValidateRegistration(ctx, rc)
		requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)
	})

	t.Run("non-string types", func(t *testing.T) {
		rc := &Context{Body: map[string]any{"email": float64(5), "password": "password8"}}
		err := ValidateRegistration(ctx, rc)
		domainErr := requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)
		assert.Equal(t, "`email` and `password` must be of type string.", domainErr.Message)
	})

	t.Run("malformed emails", func(t *testing.T) {
		for _, email := range []string{"plain", "missing@tld", "@nodomain.com", "two words@example.com"} {
			rc := &Context{Body: valid()}
			rc.Body["email"] = email
			err := ValidateRegistration(ctx, rc)
			requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)
		}
	})

	t.Run("leading space email rejected", func(t *testing.T) {
		rc := &Context{Body: valid()}
		rc.Body["email"] = " a@b.com "
		err := ValidateRegistration(ctx, rc)
		requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)
	})

	t.Run("trailing space password rejected", func(t *testing.T) {
		rc := &Context{Body: valid()}
		rc.Body["password"] = "password8 "
		err := ValidateRegistration(ctx, rc)
		domainErr := requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)
		assert.Equal(t, "email and password cannot begin or end with a space.", domainErr.Message)
	})
}
