package codereadr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := &APIError{Section: SectionUsers, Action: ActionCreate, Message: "Username already exists"}
		assert.Equal(t, "codereadr: API error: Username already exists", err.Error())
	})

	t.Run("without message", func(t *testing.T) {
		err := &APIError{Section: SectionUsers, Action: ActionCreate, Status: 0}
		assert.Equal(t, "codereadr: API error (status 0) for users/create", err.Error())
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("creating user: %w", &APIError{Message: "nope"})
		assert.True(t, IsAPIError(err))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "nope", apiErr.Message)
	})

	t.Run("other errors", func(t *testing.T) {
		assert.False(t, IsAPIError(errors.New("boom")))
		assert.False(t, IsAPIError(nil))
		assert.False(t, IsAPIError(&StatusError{StatusCode: 500}))
	})
}

func TestStatusError(t *testing.T) {
	err := &StatusError{StatusCode: 503, Body: "maintenance"}
	assert.Equal(t, "codereadr: unexpected HTTP status 503: maintenance", err.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	err := &ParseError{Err: ErrEmptyResponse}
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Contains(t, err.Error(), "empty response document")
}

func TestVocabulary(t *testing.T) {
	t.Run("sections", func(t *testing.T) {
		assert.Len(t, Sections, 6)
		for _, s := range Sections {
			assert.True(t, s.Known(), s)
		}
		assert.False(t, Section("fsdfds").Known())
		assert.Equal(t, "scan_properties", SectionScanProperties.String())
	})

	t.Run("actions", func(t *testing.T) {
		assert.Len(t, Actions, 10)
		for _, a := range Actions {
			assert.True(t, a.Known(), a)
		}
		assert.False(t, Action("explode").Known())
		assert.Equal(t, "revokeuserpermission", ActionRevokeUserPermission.String())
	})
}
