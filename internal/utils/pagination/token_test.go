package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	eol := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	id := "6f1c2a7e-8d1b-4b4e-9c53-0d7f3b1f2a10"

	token := EncodeToken(eol, id)
	assert.NotEmpty(t, token)

	cursor, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, eol.Equal(cursor.SortKey))
	assert.Equal(t, id, cursor.ID)
}

func TestEncodeToken_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	eol := time.Date(2026, 3, 31, 20, 0, 0, 0, loc)

	cursor, err := DecodeToken(EncodeToken(eol, "x"))
	require.NoError(t, err)
	assert.True(t, eol.Equal(cursor.SortKey))
	assert.Equal(t, time.UTC, cursor.SortKey.Location())
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2026-03-31T00:00:00Z"))
	_, err = DecodeToken(noSeparator)
	assert.ErrorContains(t, err, "split")

	emptyID := base64.URLEncoding.EncodeToString([]byte("2026-03-31T00:00:00Z|"))
	_, err = DecodeToken(emptyID)
	assert.ErrorContains(t, err, "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|abc"))
	_, err = DecodeToken(badDate)
	assert.ErrorContains(t, err, "sort key parse")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, ClampLimit(0, 50, 200))
	assert.Equal(t, 50, ClampLimit(-3, 50, 200))
	assert.Equal(t, 10, ClampLimit(10, 50, 200))
	assert.Equal(t, 200, ClampLimit(1000, 50, 200))
}
