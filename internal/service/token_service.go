package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/carryon-service/config"
	"github.com/guttosm/carryon-service/internal/domain/dto"
)

// TokenIssuer is the iss claim of every access token.
const TokenIssuer = "carryon-service"

var (
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidOperatorKey is returned when no operator matches the presented key.
	ErrInvalidOperatorKey = errors.New("invalid operator key")
)

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenService exchanges operator keys for short-lived access tokens.
type TokenService interface {
	// Issue returns an access token for the operator owning key.
	Issue(ctx context.Context, key string) (*dto.TokenResponse, error)
	// Validate parses an access token and returns its claims.
	Validate(tokenString string) (*dto.Claims, error)
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	// OperatorKeys maps an operator name to a bcrypt hash.
	OperatorKeys map[string]string
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey:      authConfig.JWTSecretKey,
		AccessTokenTTL: authConfig.AccessTokenTTL,
		OperatorKeys:   authConfig.OperatorKeys,
	}
}

type operator struct {
	name string
	hash []byte
}

// TokenServiceImpl implements TokenService.
type TokenServiceImpl struct {
	secretKey      []byte
	accessTokenTTL time.Duration
	operators      []operator
	now            func() time.Time
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) *TokenServiceImpl {
	operators := make([]operator, 0, len(cfg.OperatorKeys))
	for name, hash := range cfg.OperatorKeys {
		operators = append(operators, operator{name: name, hash: []byte(hash)})
	}
	sort.Slice(operators, func(i, j int) bool { return operators[i].name < operators[j].name })

	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &TokenServiceImpl{
		secretKey:      []byte(cfg.SecretKey),
		accessTokenTTL: ttl,
		operators:      operators,
		now:            time.Now,
	}
}

// Issue returns an editor token for the operator whose hash matches key.
func (s *TokenServiceImpl) Issue(ctx context.Context, key string) (*dto.TokenResponse, error) {
	if key == "" {
		return nil, ErrInvalidOperatorKey
	}

	name, ok := s.matchOperator(key)
	if !ok {
		log.Ctx(ctx).Warn().Msg("Token request with unknown operator key")
		return nil, ErrInvalidOperatorKey
	}

	token, err := s.sign(name, []string{dto.RoleEditor})
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTokenTTL.Seconds()),
	}, nil
}

// Validate parses an access token and returns its claims.
func (s *TokenServiceImpl) Validate(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(TokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		claims := claimsWithJWT.Claims
		if claims.Operator == "" {
			claims.Operator = claimsWithJWT.Subject
		}
		return &claims, nil
	}

	return nil, ErrInvalidToken
}

// matchOperator checks every hash so timing does not reveal which operator matched.
func (s *TokenServiceImpl) matchOperator(key string) (string, bool) {
	matched := ""
	for _, op := range s.operators {
		if bcrypt.CompareHashAndPassword(op.hash, []byte(key)) == nil && matched == "" {
			matched = op.name
		}
	}
	return matched, matched != ""
}

func (s *TokenServiceImpl) sign(operator string, roles []string) (string, error) {
	now := s.now()

	claims := &ClaimsWithJWT{
		Claims: dto.Claims{
			Operator: operator,
			Roles:    roles,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   operator,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
