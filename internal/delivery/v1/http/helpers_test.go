package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/narahe-ltd/recommendation-ai/pkg/e"
)

func TestParseRateToBasisPoints(t *testing.T) {
	bps, err := parseRateToBasisPoints("4.25")
	assert.Nil(t, err)
	assert.Equal(t, int64(425), bps)

	bps, err = parseRateToBasisPoints("0")
	assert.Nil(t, err)
	assert.Equal(t, int64(0), bps)

	bps, err = parseRateToBasisPoints("100")
	assert.Nil(t, err)
	assert.Equal(t, int64(10000), bps)

	_, err = parseRateToBasisPoints("")
	assert.ErrorIs(t, err, e.ErrInvalidRate)

	_, err = parseRateToBasisPoints("abc")
	assert.ErrorIs(t, err, e.ErrInvalidRate)

	_, err = parseRateToBasisPoints("-1")
	assert.ErrorIs(t, err, e.ErrInvalidRate)

	_, err = parseRateToBasisPoints("100.01")
	assert.ErrorIs(t, err, e.ErrInvalidRate)

	_, err = parseRateToBasisPoints("4.255")
	assert.ErrorIs(t, err, e.ErrRatePrecision)
}

func TestToHTTPResponse(t *testing.T) {
	code, msg := ToHTTPResponse(e.ErrCustomerNotFound)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, e.ErrCustomerNotFound.Error(), msg)

	code, _ = ToHTTPResponse(e.ErrInvalidRate)
	assert.Equal(t, http.StatusBadRequest, code)

	code, msg = ToHTTPResponse(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)

	// Обёрнутые ошибки разворачиваются через errors.Is
	code, _ = ToHTTPResponse(e.Wrap("SomeRepo.GetByID", e.ErrCustomerNotFound))
	assert.Equal(t, http.StatusNotFound, code)
}
