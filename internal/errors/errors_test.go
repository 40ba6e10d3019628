package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcdex/arcdex/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "weapon not found")

	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "weapon not found", err.Message)
	assert.Equal(t, "NOT_FOUND: weapon not found", err.Error())
}

func TestWrap(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode errors.Code
	}{
		{
			name:     "plain error defaults to internal",
			err:      fmt.Errorf("disk on fire"),
			wantCode: errors.CodeInternal,
		},
		{
			name:     "classified error keeps its code",
			err:      errors.DataLoss("weapons.json truncated"),
			wantCode: errors.CodeDataLoss,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := errors.Wrap(tc.err, "failed to load dataset")
			assert.Equal(t, tc.wantCode, wrapped.Code)
			assert.ErrorIs(t, wrapped, tc.err)
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "whatever"))
	assert.Nil(t, errors.WrapWithCode(nil, errors.CodeNotFound, "whatever"))
}

func TestWrapWithCode(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := errors.WrapWithCodef(cause, errors.CodeDataLoss, "cannot read %s", "weapons.json")

	assert.Equal(t, errors.CodeDataLoss, err.Code)
	assert.Contains(t, err.Error(), "weapons.json")
	assert.ErrorIs(t, err, cause)
}

func TestWithMeta(t *testing.T) {
	err := errors.NotFound("gadget not found").WithMeta("token", "snap hook")

	assert.Equal(t, "snap hook", err.Meta["token"])
}

func TestGetCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errors.Code
	}{
		{name: "nil", err: nil, want: errors.CodeOK},
		{name: "not found", err: errors.NotFound("nope"), want: errors.CodeNotFound},
		{name: "wrapped not found", err: errors.Wrap(errors.NotFound("nope"), "lookup failed"), want: errors.CodeNotFound},
		{name: "plain error", err: fmt.Errorf("boom"), want: errors.CodeInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errors.GetCode(tc.err))
		})
	}
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "", errors.GetMessage(nil))
	assert.Equal(t, "enemy not found", errors.GetMessage(errors.NotFound("enemy not found")))
	assert.Equal(t, "boom", errors.GetMessage(fmt.Errorf("boom")))
}

func TestTypeCheckers(t *testing.T) {
	assert.True(t, errors.IsNotFound(errors.NotFound("x")))
	assert.True(t, errors.IsInvalidArgument(errors.InvalidArgument("x")))
	assert.True(t, errors.IsDataLoss(errors.DataLoss("x")))
	assert.False(t, errors.IsNotFound(errors.Internal("x")))
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		code errors.Code
		want int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
		{errors.CodeDataLoss, http.StatusInternalServerError},
		{errors.Code("BOGUS"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.code.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.code.HTTPStatus())
		})
	}
}
