package util

import (
	"time"

	"tower_trivia_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	PlayerID   uint   `json:"player_id"`
	PlayerName string `json:"player_name"`
	jwt.RegisteredClaims
}

func GenerateJWT(player *model.Player, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &Claims{
		PlayerID:   player.PlayerID,
		PlayerName: player.PlayerName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

func GetPlayerFromContext(c *gin.Context) *Claims {
	player, exists := c.Get("player")
	if !exists {
		return nil
	}
	claims, ok := player.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
