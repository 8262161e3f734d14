package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel errors for token verification failures
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned by ParseSessionToken for any token that fails
// signature or expiry validation.  Callers do not learn which check failed.
var ErrInvalidToken = errors.New("invalid session token")

// SessionToken represents a signed JWT session token along with its expiry.
// The Token field contains the serialized JWT string.  Exp stores the
// expiration timestamp as a time.Time.  Session tokens are self‑contained:
// nothing is persisted server‑side, so validity is determined purely by the
// signature and the embedded expiry at verification time.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// SessionClaims are the verified contents of a session token.
type SessionClaims struct {
    UserID   string // subject claim: the credential's UUID
    Username string // username claim as stored at registration
}

// NewSessionToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user's id and username, and a TTL in hours.  The JWT
// includes standard claims: subject (sub), username, expiration (exp) and
// issued at (iat).
func NewSessionToken(secret, userID, username string, ttlHours int) (SessionToken, error) {
    // Calculate the expiration time by adding the TTL to the current UTC time.
    exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
    claims := jwt.MapClaims{
        "sub":      userID,
        "username": username,
        "exp":      exp.Unix(),
        "iat":      time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    // Sign the token with the provided secret and obtain the string form.  If
    // signing fails, return the error and a zero SessionToken.
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken validates a session token string against the signing
// secret and returns its claims.  Expired tokens, tokens signed with a
// different secret and tokens using a non‑HMAC algorithm are all rejected
// with ErrInvalidToken.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Type assert the signing method to HMAC; reject others.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return SessionClaims{}, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return SessionClaims{}, ErrInvalidToken
    }
    out := SessionClaims{}
    if sub, ok := claims["sub"].(string); ok {
        out.UserID = sub
    }
    if name, ok := claims["username"].(string); ok {
        out.Username = name
    }
    if out.UserID == "" {
        return SessionClaims{}, ErrInvalidToken
    }
    return out, nil
}
