package errors

import (
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyleftdev/SCALR/internal/logging"
)

func TestErrorFormatting(t *testing.T) {
	err := New("request failed").
		WithOperation("minimize").
		WithComponent("server")

	assert.Equal(t, "request failed: operation=minimize, component=server", err.Error())
	assert.NotEmpty(t, err.StackTrace())
}

func TestWrapPreservesChain(t *testing.T) {
	underlying := stderrors.New("boom")

	wrapped := Wrap(underlying, "handling request")
	require.NotNil(t, wrapped)
	assert.True(t, Is(wrapped, underlying))

	var target *Error
	assert.True(t, As(wrapped, &target))

	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestWrapKeepsExistingStack(t *testing.T) {
	inner := New("inner")
	outer := Wrapf(inner, "outer %d", 1)

	assert.Equal(t, "outer 1", outer.Message)
	assert.Equal(t, inner.Stack, outer.Stack)
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := logging.New(logging.ErrorLevel, io.Discard)

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("unexpected")
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	RecoveryMiddleware(logger)(panicking).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestErrorHandlerPassesResponsesThrough(t *testing.T) {
	logger := logging.New(logging.ErrorLevel, io.Discard)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ErrorHandler(logger)(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
