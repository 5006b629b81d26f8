package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"healthease/internal/model"
)

// Claims mirrors what the backend signs into its HS256 tokens.
type Claims struct {
	UserID uint       `json:"id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// ErrNotJWT is returned for tokens that are not JWTs at all.
var ErrNotJWT = errors.New("token is not a JWT")

// TokenService reads backend bearer tokens. With a secret the signature is
// checked; without one the claims are only decoded.
type TokenService struct {
	secret []byte
	parser *jwt.Parser
	now    func() time.Time
}

// NewTokenService creates a token service. secret may be empty.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithoutClaimsValidation()),
		now:    time.Now,
	}
}

// Verifies reports whether signatures are checked.
func (s *TokenService) Verifies() bool {
	return len(s.secret) > 0
}

// Parse decodes the claims of tokenString. Expiry is not enforced here; see Expired.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if !s.Verifies() {
		if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
			return nil, errors.Join(ErrNotJWT, err)
		}
		return claims, nil
	}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Join(ErrNotJWT, err)
		}
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Expired reports whether tokenString can no longer be used. Opaque (non-JWT)
// tokens and JWTs without an exp claim are left to the backend to judge.
func (s *TokenService) Expired(tokenString string) bool {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return !errors.Is(err, ErrNotJWT)
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !s.now().Before(claims.ExpiresAt.Time)
}
