package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// token 用途，写进 claims 防止互换使用
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
	TokenReset   = "reset"
)

type Claims struct {
	UID  string `json:"uid"`
	Role string `json:"role"` // "user" or "admin"
	Typ  string `json:"typ"`  // access / refresh / reset
	jwt.RegisteredClaims
}

type JWTer struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	ResetTTL   time.Duration
}

func (j *JWTer) IssueAccess(uid, role string) (string, error) {
	return j.issue(uid, role, TokenAccess, j.AccessTTL)
}

func (j *JWTer) IssueRefresh(uid, role string) (string, error) {
	return j.issue(uid, role, TokenRefresh, j.RefreshTTL)
}

func (j *JWTer) IssueReset(uid, role string) (string, error) {
	return j.issue(uid, role, TokenReset, j.ResetTTL)
}

func (j *JWTer) issue(uid, role, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:  uid,
		Role: role,
		Typ:  typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Parse 校验签名/签发者/过期，并要求 token 用途匹配；任一不符即拒绝
func (j *JWTer) Parse(tokenStr, wantTyp string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithLeeway(60*time.Second))

	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	if c.Typ != wantTyp {
		return nil, errors.New("wrong token type")
	}
	return c, nil
}
