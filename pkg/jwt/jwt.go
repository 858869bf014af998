package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role y CountryID viajan en el token, pero el middleware re-resuelve al usuario
// contra la DB en cada request: desactivar una cuenta invalida de inmediato
// tokens vigentes no expirados.
type Claims struct {
	jwt.RegisteredClaims
	Role      string `json:"role"`       // SUPER_ADMIN | COUNTRY_ADMIN | EDITOR
	CountryID string `json:"country_id"` // vacío si no tiene país asignado
}

// Generate genera un token firmado con la familia HMAC (HS256/HS384/HS512
// según algorithm). Subject es el userID; expMinutes controla el claim exp.
func Generate(secret, algorithm, userID, role, countryID, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return "", fmt.Errorf("jwt: algoritmo desconocido %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return "", fmt.Errorf("jwt: solo se admite la familia HMAC, no %q", algorithm)
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Role:      role,
		CountryID: countryID,
	}
	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración, y devuelve userID, role y countryID.
// Retorna error si el token es inválido, expirado, malformado o firmado con
// un método fuera de la familia HMAC.
func Parse(secret, tokenString string) (userID, role, countryID string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, claims.Role, claims.CountryID, nil
}
