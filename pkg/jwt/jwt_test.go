package jwt_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Inventario-repuestos/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, pkgjwt.Identity{UserID: "u-1", Email: "ana@example.com", Role: "authenticated"}, "https://auth.example", 60)
	require.NoError(t, err)

	id, err := pkgjwt.Parse(secret, "https://auth.example", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.UserID)
	assert.Equal(t, "ana@example.com", id.Email)
	assert.Equal(t, "authenticated", id.Role)
}

func TestParse_Rechazos(t *testing.T) {
	valido, err := pkgjwt.Generate(secret, pkgjwt.Identity{UserID: "u-1"}, "emisor-a", 60)
	require.NoError(t, err)
	expirado, err := pkgjwt.Generate(secret, pkgjwt.Identity{UserID: "u-1"}, "", -1)
	require.NoError(t, err)
	sinSub, err := pkgjwt.Generate(secret, pkgjwt.Identity{}, "", 60)
	require.NoError(t, err)
	hs512, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, gojwt.MapClaims{"sub": "u-1", "exp": 4102444800}).SignedString([]byte(secret))
	require.NoError(t, err)
	sinExp, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"sub": "u-1"}).SignedString([]byte(secret))
	require.NoError(t, err)

	casos := map[string]struct{ secret, issuer, token string }{
		"secret incorrecto": {"otro", "", valido},
		"emisor distinto":   {secret, "emisor-b", valido},
		"expirado":          {secret, "", expirado},
		"sin sub":           {secret, "", sinSub},
		"algoritmo HS512":   {secret, "", hs512},
		"sin exp":           {secret, "", sinExp},
		"malformado":        {secret, "", "token.invalido.aqui"},
		"secret vacío":      {"", "", valido},
	}
	for name, c := range casos {
		t.Run(name, func(t *testing.T) {
			_, err := pkgjwt.Parse(c.secret, c.issuer, c.token)
			assert.Error(t, err)
		})
	}
}
