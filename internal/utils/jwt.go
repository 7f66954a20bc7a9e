// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// VideoGrant is the "video" claim of a LiveKit access token.
type VideoGrant struct {
	RoomAdmin bool   `json:"roomAdmin,omitempty"`
	RoomJoin  bool   `json:"roomJoin,omitempty"`
	Room      string `json:"room,omitempty"`
}

// LiveKitClaims are the claims of a LiveKit server API token.
type LiveKitClaims struct {
	jwt.RegisteredClaims
	Video VideoGrant `json:"video"`
}

// GenerateLiveKitToken creates an HMAC-SHA256 signed LiveKit access token
// issued by apiKey that grants room administration of room.
//
// The token includes the following standard claims:
//   - Issuer    (iss): the LiveKit API key
//   - NotBefore (nbf): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// Example usage:
//
//	token, err := utils.GenerateLiveKitToken("APIxxxx", "secret", "call-15550001111-1234", 10*time.Minute)
func GenerateLiveKitToken(apiKey, apiSecret, room string, ttl time.Duration) (string, error) {
	if apiKey == "" || apiSecret == "" || ttl <= 0 {
		return "", errors.New("invalid params for generating LiveKit token")
	}

	now := time.Now()
	claims := &LiveKitClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    apiKey,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Video: VideoGrant{RoomAdmin: true, Room: room},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(apiSecret))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing LiveKit token: %w", err)
	}

	return signed, nil
}

// ParseLiveKitToken validates a token produced by [GenerateLiveKitToken] and
// returns its claims.
func ParseLiveKitToken(tokenString, apiKey, apiSecret string) (*LiveKitClaims, error) {
	claims := &LiveKitClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(apiSecret), nil
	}, jwt.WithIssuer(apiKey), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims, nil
}
