package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"bookstore/internal/models"
	"bookstore/internal/store"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and returns an access token for it.
func Register(users *store.UserStore, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/register"
		defer handlePanic(c, route)

		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		user, err := models.NewUser(req.Email, req.Password, req.Name, req.Address)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				respondWithError(c, http.StatusBadRequest, route, vErr.Error())
				return
			}
			log.Println("[AUTH] [ERROR] register failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "registration failed")
			return
		}

		if err := users.Register(user); err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				log.Println("[AUTH] [ERROR] register email exists:", user.Key())
				respondWithError(c, http.StatusConflict, route, "email already registered")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "registration failed")
			return
		}

		accessToken, err := issueUserToken(user.Email, jwtSecret, accessTTL)
		if err != nil {
			log.Println("[AUTH] [ERROR] register token generation failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		log.Println("[AUTH] [INFO] user registered:", user.Key())
		c.JSON(http.StatusCreated, gin.H{
			"accessToken": accessToken,
			"user": gin.H{
				"email": user.Email,
				"name":  user.Name,
			},
		})
	}
}

// Login verifies credentials and returns an access token. Consecutive
// failures lock the account; a correct password unlocks it again.
func Login(users *store.UserStore, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/login"
		defer handlePanic(c, route)

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		email := strings.TrimSpace(req.Email)
		user, ok := users.FindByEmail(email)
		if !ok {
			log.Println("[AUTH] [ERROR] login unknown email")
			respondWithError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}

		if user.Locked() {
			log.Println("[AUTH] [ERROR] login attempt on locked account:", user.Key())
			respondWithError(c, http.StatusForbidden, route, "account locked")
			return
		}

		if !user.CheckPassword(req.Password) {
			locked := user.RecordFailedLogin()
			log.Println("[AUTH] [ERROR] login invalid credentials for:", user.Key())
			if locked {
				respondWithError(c, http.StatusForbidden, route, "account locked")
				return
			}
			respondWithError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}

		accessToken, err := issueUserToken(user.Email, jwtSecret, accessTTL)
		if err != nil {
			log.Println("[AUTH] [ERROR] login token generation failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		log.Println("[AUTH] [INFO] user login succeeded:", user.Key())
		c.JSON(http.StatusOK, gin.H{
			"accessToken": accessToken,
			"expiresIn":   int64(accessTTL.Seconds()),
			"user": gin.H{
				"email": user.Email,
				"name":  user.Name,
			},
		})
	}
}

// GetMe returns the authenticated account's profile.
func GetMe(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /auth/me"
		defer handlePanic(c, route)

		user, ok := authenticatedUser(c, users)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"email":     user.Email,
			"name":      user.Name,
			"address":   user.Address,
			"createdAt": user.CreatedAt,
			"orders":    len(user.OrderHistory()),
		})
	}
}

func authenticatedUser(c *gin.Context, users *store.UserStore) (*models.User, bool) {
	email := c.GetString("userEmail")
	if email == "" {
		return nil, false
	}
	return users.FindByEmail(email)
}

func issueUserToken(email, secret string, accessTTL time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
