package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New(ErrCodeRegionNotFound, "region not found")
	assert.Equal(t, `[RGN_001] region not found`, e.Error())

	withDetail := e.WithDetail("requested=Atlantis")
	assert.Equal(t, `[RGN_001] region not found: requested=Atlantis`, withDetail.Error())
	// Original is untouched.
	assert.Empty(t, e.Detail)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "should be nil"))
}

func TestWrap_PreservesCodeWhenUnknown(t *testing.T) {
	inner := RegionNotFound("Atlantis")
	wrapped := Wrap(inner, CodeUnknown, "lookup failed")
	assert.Equal(t, ErrCodeRegionNotFound, wrapped.Code)
	assert.True(t, stderrors.Is(wrapped, wrapped))
	assert.True(t, IsNotFound(wrapped))
}

func TestIsCode_TraversesChain(t *testing.T) {
	inner := InvalidMode("percentage")
	mid := fmt.Errorf("scenario failed: %w", inner)
	outer := Wrap(mid, ErrCodeInternal, "request aborted")

	assert.True(t, IsCode(outer, ErrCodeInvalidMode))
	assert.False(t, IsCode(outer, ErrCodeRegionNotFound))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeInvalidWeights, GetCode(InvalidWeights("bad sum")))
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeRegionNotFound, http.StatusNotFound},
		{ErrCodeInvalidWeights, http.StatusBadRequest},
		{ErrCodeInvalidMode, http.StatusBadRequest},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeShapeMismatch, http.StatusInternalServerError},
		{ErrCodeDatasetUnavailable, http.StatusServiceUnavailable},
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatusForCode(tt.code), "code: %s", tt.code)
	}
}

func TestShapeMismatchMessage(t *testing.T) {
	e := ShapeMismatch("cluster labels", 19, 20)
	require.NotNil(t, e)
	assert.Equal(t, ErrCodeShapeMismatch, e.Code)
	assert.Contains(t, e.Message, "19")
	assert.Contains(t, e.Message, "20")
}

func TestClientServerClassification(t *testing.T) {
	assert.True(t, IsClientError(ErrCodeInvalidMode))
	assert.True(t, IsClientError(ErrCodeValidation))
	assert.False(t, IsServerError(ErrCodeInvalidMode))
	assert.True(t, IsServerError(ErrCodeShapeMismatch))
}

func TestModuleForCode(t *testing.T) {
	assert.Equal(t, "RGN", ModuleForCode(ErrCodeRegionNotFound))
	assert.Equal(t, "SCN", ModuleForCode(ErrCodeInvalidMode))
	assert.Equal(t, "COMMON", ModuleForCode(ErrCodeInternal))
}
