package request

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillapp/quill-server/internal/errors"
)

// stubRefs counts lookups so tests can assert a guard short-circuited
// before touching storage.
type stubRefs struct {
	folderExists bool
	ownedTags    int

	folderLookups int
	tagLookups    int
}

func (s *stubRefs) FolderExists(_ context.Context, _, _ string) (bool, error) {
	s.folderLookups++
	return s.folderExists, nil
}

func (s *stubRefs) CountOwnedTags(_ context.Context, _ string, _ []string) (int, error) {
	s.tagLookups++
	return s.ownedTags, nil
}

const (
	callerID    = "000000000000000000000001"
	validRefID  = "aaaaaaaaaaaaaaaaaaaaaaaa"
	validRefID2 = "bbbbbbbbbbbbbbbbbbbbbbbb"
)

func TestFolderReference(t *testing.T) {
	ctx := context.Background()

	t.Run("no folder reference passes without lookup", func(t *testing.T) {
		refs := &stubRefs{}
		rc := &Context{UserID: callerID, Body: map[string]any{"title": "x"}}
		assert.NoError(t, FolderReference(refs)(ctx, rc))
		assert.Zero(t, refs.folderLookups)
	})

	t.Run("malformed folderId rejected before lookup", func(t *testing.T) {
		refs := &stubRefs{}
		rc := &Context{UserID: callerID, Body: map[string]any{"folderId": "nope"}}
		err := FolderReference(refs)(ctx, rc)
		domainErr := requireDomainError(t, err, errors.CodeInvalidReference, http.StatusBadRequest)
		assert.Equal(t, "Invalid `folderId` or `parent` in request body.", domainErr.Message)
		assert.Zero(t, refs.folderLookups)
	})

	t.Run("self-parent rejected before lookup", func(t *testing.T) {
		refs := &stubRefs{}
		rc := &Context{UserID: callerID, Body: map[string]any{
			"id":     validRefID,
			"parent": validRefID,
		}}
		err := FolderReference(refs)(ctx, rc)
		domainErr := requireDomainError(t, err, errors.CodeInvalidReference, http.StatusBadRequest)
		assert.Equal(t, "`parent` cannot point to itself.", domainErr.Message)
		assert.Zero(t, refs.folderLookups)
	})

	t.Run("existing owned folder passes", func(t *testing.T) {
		refs := &stubRefs{folderExists: true}
		rc := &Context{UserID: callerID, Body: map[string]any{"folderId": validRefID}}
		assert.NoError(t, FolderReference(refs)(ctx, rc))
		assert.Equal(t, 1, refs.folderLookups)
	})

	t.Run("unknown or unowned folder is 404", func(t *testing.T) {
		refs := &stubRefs{folderExists: false}
		rc := &Context{UserID: callerID, Body: map[string]any{"folderId": validRefID}}
		err := FolderReference(refs)(ctx, rc)
		domainErr := requireDomainError(t, err, errors.CodeReferenceNotFound, http.StatusNotFound)
		assert.Equal(t, "`folderId` or `parent` in request body does not exist.", domainErr.Message)
	})

	t.Run("parent distinct from id is looked up", func(t *testing.T) {
		refs := &stubRefs{folderExists: true}
		rc := &Context{UserID: callerID, Body: map[string]any{
			"id":     validRefID,
			"parent": validRefID2,
		}}
		assert.NoError(t, FolderReference(refs)(ctx, rc))
		assert.Equal(t, 1, refs.folderLookups)
	})
}

func TestTagReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("absent tags pass", func(t *testing.T) {
		refs := &stubRefs{}
		rc := &Context{UserID: callerID, Method: http.MethodPost, Body: map[string]any{}}
		assert.NoError(t, TagReferences(refs)(ctx, rc))
		assert.Zero(t, refs.tagLookups)
	})

	t.Run("non-array tags rejected", func(t *testing.T) {
		refs := &stubRefs{}
		rc := &Context{UserID: callerID, Method: http.MethodPost, Body: map[string]any{"tags": "oops"}}
		err := TagReferences(refs)(ctx, rc)
		domainErr := requireDomainError(t, err, errors.CodeInvalidInput, http.StatusBadRequest)
		assert.Equal(t, "`tags` must be an array", domainErr.Message)
	})

	t.Run("empty array passes without storage call", func(t *testing.T) {
		refs := &stubRefs{}
		rc := &Context{UserID: callerID, Method: http.MethodPost, Body: map[string]any{"tags": []any{}}}
		assert.NoError(t, TagReferences(refs)(ctx, rc))
		assert.Zero(t, refs.tagLookups)
	})

	t.Run("malformed element names its index", func(t *testing.T) {
		refs := &stubRefs{}
		rc := &Context{UserID: callerID, Method: http.MethodPost, Body: map[string]any{
			"tags": []any{validRefID, "bad", validRefID2},
		}}
		err := TagReferences(refs)(ctx, rc)
		domainErr := requireDomainError(t, err, errors.CodeInvalidReference, http.StatusBadRequest)
		assert.Equal(t, "Invalid tag `id` parameter at index 1.", domainErr.Message)
		assert.Zero(t, refs.tagLookups)
	})

	t.Run("ownership confirmed for mutating verbs", func(t *testing.T) {
		refs := &stubRefs{ownedTags: 2}
		rc := &Context{UserID: callerID, Method: http.MethodPut, Body: map[string]any{
			"tags": []any{validRefID, validRefID2},
		}}
		assert.NoError(t, TagReferences(refs)(ctx, rc))
		assert.Equal(t, 1, refs.tagLookups)
	})

	t.Run("count mismatch is 404", func(t *testing.T) {
		refs := &stubRefs{ownedTags: 1}
		rc := &Context{UserID: callerID, Method: http.MethodPost, Body: map[string]any{
			"tags": []any{validRefID, validRefID2},
		}}
		err := TagReferences(refs)(ctx, rc)
		domainErr := requireDomainError(t, err, errors.CodeReferenceNotFound, http.StatusNotFound)
		assert.Equal(t, "An id in `tags` does not exist.", domainErr.Message)
	})

	t.Run("reads and deletes skip the ownership count", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			refs := &stubRefs{ownedTags: 0}
			rc := &Context{UserID: callerID, Method: method, Body: map[string]any{
				"tags": []any{validRefID},
			}}
			assert.NoError(t, TagReferences(refs)(ctx, rc), method)
			assert.Zero(t, refs.tagLookups, method)
		}
	})
}
