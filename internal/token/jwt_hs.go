package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims - кто из операторов выполняет действие.
type Claims struct {
	Operator string
	Role     string
	Expires  time.Time
}

// HSProvider подписывает и проверяет токены операторов (HS256, общий секрет).
type HSProvider struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewHSProvider(secret, issuer string) *HSProvider {
	return &HSProvider{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

type customClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (p *HSProvider) Sign(operator, role string, ttl time.Duration) (string, time.Time, error) {
	now := p.now()
	exp := now.Add(ttl)

	claims := customClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			Subject:   operator,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(p.secret)
	return signed, exp, err
}

func (p *HSProvider) Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &customClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	}, jwt.WithIssuer(p.issuer), jwt.WithTimeFunc(p.now))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	cc, ok := parsed.Claims.(*customClaims)
	if !ok || !parsed.Valid || cc.Subject == "" {
		return nil, ErrInvalidToken
	}

	out := &Claims{Operator: cc.Subject, Role: cc.Role}
	if cc.ExpiresAt != nil {
		out.Expires = cc.ExpiresAt.Time
	}
	return out, nil
}
