package auth

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"Bracketpool/models"

	jwt "github.com/dgrijalva/jwt-go"
)

// SessionCookieName is the cookie the browser flow stores the token in;
// API clients can send the same token as a bearer header instead.
const SessionCookieName = "session_token"

// CreateToken signs a session token for a participant. The embedded
// token_id is the persisted session row's id, so reset can invalidate
// tokens that are otherwise still within their signature lifetime.
func CreateToken(participantID uint, tokenID string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["participant_id"] = participantID
	claims["token_id"] = tokenID
	claims["exp"] = time.Now().Add(models.SessionTTL).Unix()
	at := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return at.SignedString([]byte(os.Getenv("API_SECRET")))
}

// ExtractToken pulls the raw token from the Authorization header, the
// session cookie, or a token query parameter, in that order.
func ExtractToken(r *http.Request) string {
	bearerToken := r.Header.Get("Authorization")
	if len(strings.Split(bearerToken, " ")) == 2 {
		return strings.Split(bearerToken, " ")[1]
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.URL.Query().Get("token")
}

// ExtractTokenSession verifies the request's token and returns the
// participant id and session token id it carries.
func ExtractTokenSession(r *http.Request) (uint, string, error) {
	tokenString := ExtractToken(r)
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("API_SECRET")), nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid session token")
	}
	pid, ok := claims["participant_id"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("invalid session token")
	}
	tokenID, ok := claims["token_id"].(string)
	if !ok || tokenID == "" {
		return 0, "", fmt.Errorf("invalid session token")
	}
	return uint(pid), tokenID, nil
}
