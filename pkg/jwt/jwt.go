package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrEmptySecret error = errors.New("jwt secret is empty")

var signingMethod = jwt.SigningMethodHS256

type JWTService struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTService(jwtSecret []byte) (*JWTService, error) {
	if len(jwtSecret) == 0 {
		return nil, ErrEmptySecret
	}

	return &JWTService{
		secret: jwtSecret,
		parser: &jwt.Parser{
			ValidMethods: []string{signingMethod.Alg()},
			// expiry is checked against TimeNow below
			SkipClaimsValidation: true,
		},
	}, nil
}

// Issue signs a token for subject that expires ttl after the moment of issuance.
func (s *JWTService) Issue(subject string, ttl time.Duration) (string, error) {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenStr, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}

	return tokenStr, nil
}

// Verify checks the signature and expiry of token and returns its subject exactly as issued.
func (s *JWTService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	jwtToken, err := s.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return "", ErrTokenNotValid
	}

	if !canonicalSegment(jwtToken.Signature) {
		return "", fmt.Errorf("non-canonical signature encoding: %w", ErrTokenNotValid)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fmt.Errorf("missing sub claim: %w", ErrTokenNotValid)
	}

	expVal, ok := claims["exp"].(float64)
	if !ok {
		return "", fmt.Errorf("missing exp claim: %w", ErrTokenNotValid)
	}

	if TimeNow().Unix() > int64(expVal) {
		return "", fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0).UTC(), ErrTokenExpired)
	}

	return subject, nil
}

// canonicalSegment reports whether seg is the exact base64url encoding of the bytes it decodes
// to. The lenient decoder ignores the unused low bits of the last character, so several
// spellings would otherwise verify as the same signature.
func canonicalSegment(seg string) bool {
	raw, err := jwt.DecodeSegment(seg)
	if err != nil {
		return false
	}
	return jwt.EncodeSegment(raw) == seg
}
