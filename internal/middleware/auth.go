package middleware

import (
	"net/http"
	"strings"

	"urbannest-properties/internal/auth"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthMiddleware validates the bearer token and attaches the caller identity
// to the request context. Requests without a valid token never reach the
// services.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateJWT(parts[1], secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token subject"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_name", claims.Name)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

// CallerID returns the authenticated caller attached by AuthMiddleware.
func CallerID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}
