package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultReceiptTTL = 30 * 24 * time.Hour

// ReceiptIssuer signs and verifies inquiry receipts. A receipt grants read access
// to the status of exactly one inquiry.
type ReceiptIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewReceiptIssuer(secret []byte, issuer string, ttl time.Duration) *ReceiptIssuer {
	if ttl <= 0 {
		ttl = defaultReceiptTTL
	}
	return &ReceiptIssuer{secret: secret, issuer: issuer, ttl: ttl, now: time.Now}
}

// Issue returns a signed token whose subject is inquiryID.
func (r *ReceiptIssuer) Issue(inquiryID string) (string, error) {
	if len(r.secret) == 0 {
		return "", errors.New("receipt secret is not configured")
	}
	now := r.now()
	claims := jwt.RegisteredClaims{
		Subject:   inquiryID,
		Issuer:    r.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(r.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("sign receipt: %w", err)
	}
	return signed, nil
}

// Verify checks signature, issuer and expiry and returns the inquiry id.
func (r *ReceiptIssuer) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return r.secret, nil
	}, jwt.WithLeeway(30*time.Second), jwt.WithTimeFunc(r.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	if r.issuer != "" && claims.Issuer != r.issuer {
		return "", fmt.Errorf("%w: unexpected issuer %q", ErrInvalidReceipt, claims.Issuer)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidReceipt)
	}
	return claims.Subject, nil
}
