package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	in := Identity{UserID: 12, Role: "admin", Area: "Almacén"}
	tok, err := Generate("s3cr3t", in, "suministros-api", 60)
	require.NoError(t, err)

	got, err := Parse("s3cr3t", tok)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	_, err = Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate("s3cr3t", Identity{UserID: 1, Role: "user"}, "suministros-api", -1)
	require.NoError(t, err)
	_, err = Parse("s3cr3t", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", Identity{UserID: 1}, "x", 10)
	assert.Error(t, err)
	_, err = Parse("", "abc")
	assert.Error(t, err)
}
