package request

import (
	"context"
	"net/http"

	"github.com/quillapp/quill-server/internal/errors"
	"github.com/quillapp/quill-server/internal/id"
)

// ReferenceSource answers the two storage questions reference guards
// ask. Implemented by the store; tests substitute a stub.
type ReferenceSource interface {
	FolderExists(ctx context.Context, userID, folderID string) (bool, error)
	CountOwnedTags(ctx context.Context, userID string, ids []string) (int, error)
}

// FolderReference validates the folder reference in the body, under
// either the `folderId` or `parent` key. Checks run in a fixed order:
// syntactic shape, then self-parenting, then an owned-existence lookup.
// The lookup is the only step touching storage and is skipped entirely
// when an earlier step fails.
func FolderReference(refs ReferenceSource) Guard {
	return func(ctx context.Context, rc *Context) error {
		folderID, hasFolderID := stringField(rc.Body, "folderId")
		parent, hasParent := stringField(rc.Body, "parent")
		if !hasFolderID && !hasParent {
			return nil
		}

		ref := folderID
		if ref == "" {
			ref = parent
		}
		if !id.IsValid(ref) {
			return errors.InvalidReference("Invalid `folderId` or `parent` in request body.")
		}

		if hasParent {
			if bodyID, ok := stringField(rc.Body, "id"); ok && parent == bodyID {
				return errors.InvalidReference("`parent` cannot point to itself.")
			}
		}

		exists, err := refs.FolderExists(ctx, rc.UserID, ref)
		if err != nil {
			return err
		}
		if !exists {
			return errors.ReferenceNotFound("`folderId` or `parent` in request body does not exist.")
		}
		return nil
	}
}

// TagReferences validates the `tags` array in the body: it must be an
// array, every element must be a well-formed identifier, and for
// mutating verbs every element must name a tag the caller owns. Reads
// and deletes skip the ownership count — storage scoping already makes
// foreign tags invisible there. An empty array passes with no storage
// call.
func TagReferences(refs ReferenceSource) Guard {
	return func(ctx context.Context, rc *Context) error {
		raw, ok := rc.Body["tags"]
		if !ok {
			return nil
		}

		elements, ok := raw.([]any)
		if !ok {
			return errors.InvalidInput("`tags` must be an array")
		}
		if len(elements) == 0 {
			return nil
		}

		tags := make([]string, len(elements))
		for i, element := range elements {
			s, isString := element.(string)
			if !isString || !id.IsValid(s) {
				return errors.InvalidReferencef("Invalid tag `id` parameter at index %d.", i)
			}
			tags[i] = s
		}

		if rc.Method == http.MethodGet || rc.Method == http.MethodDelete {
			return nil
		}

		count, err := refs.CountOwnedTags(ctx, rc.UserID, tags)
		if err != nil {
			return err
		}
		if count != len(tags) {
			return errors.ReferenceNotFound("An id in `tags` does not exist.")
		}
		return nil
	}
}

// stringField returns body[key] as a string. ok reports key presence;
// a present non-string comes back as "".
func stringField(body map[string]any, key string) (string, bool) {
	value, ok := body[key]
	if !ok {
		return "", false
	}
	s, _ := value.(string)
	return s, true
}
