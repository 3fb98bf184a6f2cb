package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/models"
)

const tokenTTL = 30 * 24 * time.Hour

// Claims is the bearer-token payload. restaurant_id is the tenant
// boundary; handlers scope every query by it.
type Claims struct {
	UserID       uint   `json:"user_id"`
	RestaurantID uint   `json:"restaurant_id"`
	Email        string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed JWT for a user, valid for 30 days.
func GenerateToken(user *models.User, secret []byte) (string, error) {
	claims := Claims{
		UserID:       user.ID,
		RestaurantID: user.RestaurantID,
		Email:        user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// AuthRequired validates the bearer token and resolves the caller to a
// live user row. A missing/invalid/expired token is 401; a valid token
// whose user has since been removed is 404.
func AuthRequired(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Não autorizado"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token inválido"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Usuário não encontrado"})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("restaurantID", user.RestaurantID)
		c.Set("email", user.Email)
		c.Next()
	}
}

// GetUserID extracts the caller's user ID from context.
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}

// GetRestaurantID extracts the caller's tenant ID from context.
func GetRestaurantID(c *gin.Context) uint {
	val, _ := c.Get("restaurantID")
	return val.(uint)
}
