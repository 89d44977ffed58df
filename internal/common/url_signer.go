package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"skysurvey/pathplanner/internal/constants"
)

// SignedToken represents a presigned export token
type SignedToken struct {
	SessionID string
	TokenID   string
	ExpiresAt time.Time
}

// URLSignerService generates and validates presigned URLs so a generated
// path can be fetched as GeoJSON by tools that hold no API key. Tokens are
// single-use; consumed token IDs are remembered in the cache until they
// would have expired anyway.
type URLSignerService struct {
	secretKey []byte
	cache     CacheInterface
}

// NewURLSignerService creates a new URL signer service
func NewURLSignerService(secretKey []byte, cache CacheInterface) *URLSignerService {
	return &URLSignerService{
		secretKey: secretKey,
		cache:     cache,
	}
}

// GeneratePresignedToken generates a single-use export token for a session
func (s *URLSignerService) GeneratePresignedToken(sessionID string, ttl time.Duration) (string, error) {
	tokenID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)

	// Create JWT claims
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"jti":        tokenID,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}

	// Sign with HMAC
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken checks signature, expiry and the single-use record. It
// does not burn the token; callers call Consume once the export payload
// is known to exist, so a failed fetch does not spend the link.
func (s *URLSignerService) ValidateToken(tokenString string) (*SignedToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sessionID, _ := (*claims)["session_id"].(string)
	tokenID, _ := (*claims)["jti"].(string)
	if sessionID == "" || tokenID == "" {
		return nil, errors.New("token missing required claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("token missing expiry")
	}

	usedKey := string(constants.CachePrefixExportUsed) + tokenID
	if _, used := s.cache.Get(usedKey); used {
		return nil, errors.New("token already used")
	}

	return &SignedToken{
		SessionID: sessionID,
		TokenID:   tokenID,
		ExpiresAt: exp.Time,
	}, nil
}

// Consume burns a validated token. The used marker lives in the cache
// until the token would have expired anyway.
func (s *URLSignerService) Consume(tok *SignedToken) error {
	usedKey := string(constants.CachePrefixExportUsed) + tok.TokenID
	if _, used := s.cache.Get(usedKey); used {
		return errors.New("token already used")
	}
	s.cache.Set(usedKey, true, time.Until(tok.ExpiresAt))
	return nil
}
