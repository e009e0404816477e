package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

func TestExtractText_PlainPassthrough(t *testing.T) {
	e := New()

	text, err := e.ExtractText(context.Background(), []byte("Ada Lovelace\nEngineer"), MIMEPlainText)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace\nEngineer", text)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	e := New()

	_, err := e.ExtractText(context.Background(), []byte{0x89, 0x50}, "image/png")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "image/png")
}

func TestExtractText_MalformedPDF(t *testing.T) {
	e := New()

	_, err := e.ExtractText(context.Background(), []byte("not a pdf"), MIMEPDF)
	assert.Error(t, err)
}

func TestExtractText_MalformedDocx(t *testing.T) {
	e := New()

	_, err := e.ExtractText(context.Background(), []byte("not a docx"), MIMEDocx)
	assert.Error(t, err)
}

func TestReadAll_CapsSize(t *testing.T) {
	data, err := ReadAll(strings.NewReader("small"), 10)
	require.NoError(t, err)
	assert.Equal(t, []byte("small"), data)

	_, err = ReadAll(strings.NewReader("this is too long"), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
