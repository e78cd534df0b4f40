package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeforge/pokeforge-api/internal/errors"
)

func TestErrorConstructors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		err := errors.NotFoundf("pokemon %d not found", 400)
		assert.Equal(t, errors.CodeNotFound, err.Code)
		assert.Equal(t, "pokemon 400 not found", err.Message)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("invalid argument", func(t *testing.T) {
		err := errors.InvalidArgument("bad input")
		assert.Equal(t, errors.CodeInvalidArgument, err.Code)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("unavailable", func(t *testing.T) {
		err := errors.Unavailable("redis down")
		assert.True(t, errors.IsUnavailable(err))
	})
}

func TestWrap(t *testing.T) {
	t.Run("preserves code of wrapped error", func(t *testing.T) {
		inner := errors.NotFound("pokemon not found")
		wrapped := errors.Wrap(inner, "catalog lookup failed")

		assert.Equal(t, errors.CodeNotFound, wrapped.Code)
		assert.True(t, errors.IsNotFound(wrapped))
		assert.ErrorIs(t, wrapped, inner)
	})

	t.Run("plain errors become internal", func(t *testing.T) {
		wrapped := errors.Wrap(stderrors.New("boom"), "something failed")
		assert.Equal(t, errors.CodeInternal, wrapped.Code)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, "ignored"))
	})

	t.Run("wrap with explicit code", func(t *testing.T) {
		wrapped := errors.WrapWithCode(stderrors.New("timeout"), errors.CodeUnavailable, "upstream unreachable")
		assert.Equal(t, errors.CodeUnavailable, wrapped.Code)
	})
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(errors.NotFound("missing")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, errors.CodeOK.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, errors.CodeInternal.HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, errors.CodeUnavailable.HTTPStatus())
}

func TestWithMeta(t *testing.T) {
	err := errors.InvalidArgument("invalid moves").
		WithMeta("invalid_moves", []string{"thunderbolt"})

	meta := errors.GetMeta(err)
	require.NotNil(t, meta)
	assert.Equal(t, []string{"thunderbolt"}, meta["invalid_moves"])

	assert.Nil(t, errors.GetMeta(stderrors.New("plain")))
}

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors yields nil", func(t *testing.T) {
		assert.NoError(t, errors.NewValidationBuilder().Build())
	})

	t.Run("collects multiple fields", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("name")
		vb.InvalidField("gender", "unknown value")
		vb.Fieldf("moves", "exactly %d moves are required", 4)

		err := vb.Build()
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))

		var structured *errors.Error
		require.True(t, errors.As(err, &structured))
		fields, ok := structured.Meta["validation_errors"].(map[string][]string)
		require.True(t, ok)
		assert.Len(t, fields, 3)
		assert.Equal(t, []string{"is required"}, fields["name"])
	})
}

func TestValidationHelpers(t *testing.T) {
	t.Run("required rejects whitespace", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", "   ", vb)
		assert.Error(t, vb.Build())
	})

	t.Run("range", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		errors.ValidateRange("pokemonId", 494, 1, 493, vb)
		assert.Error(t, vb.Build())

		vb = errors.NewValidationBuilder()
		errors.ValidateRange("pokemonId", 493, 1, 493, vb)
		assert.NoError(t, vb.Build())
	})

	t.Run("enum", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("gender", "robot", []string{"male", "female", "genderless"}, vb)
		assert.Error(t, vb.Build())
	})

	t.Run("max length", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		errors.ValidateMaxLength("nickname", "ok", 100, vb)
		assert.NoError(t, vb.Build())
	})
}
