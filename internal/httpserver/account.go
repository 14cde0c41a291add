package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	accountsvc "storefront/internal/service/account"
)

type accountService interface {
	Register(ctx context.Context, in accountsvc.RegisterInput) (*domain.Account, string, error)
	Login(ctx context.Context, email, password string) (*domain.Account, string, error)
	Profile(ctx context.Context, accountID string) (*domain.Account, error)
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// accountView is the account as returned to clients; the password hash
// never appears here.
type accountView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    accountView `json:"user"`
}

func toAccountView(a domain.Account) accountView {
	return accountView{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

func registerHandler(svc accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name, email and password are required"})
			return
		}

		acct, tok, err := svc.Register(c.Request.Context(), accountsvc.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrAlreadyExists):
				c.JSON(http.StatusConflict, gin.H{"message": "user already exists"})
			case errors.Is(err, accountsvc.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
			}
			return
		}

		c.JSON(http.StatusCreated, authResponse{
			Message: "user registered successfully",
			Token:   tok,
			User:    toAccountView(*acct),
		})
	}
}

func loginHandler(svc accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
			return
		}

		acct, tok, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, accountsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
			return
		}

		c.JSON(http.StatusOK, authResponse{
			Message: "login successful",
			Token:   tok,
			User:    toAccountView(*acct),
		})
	}
}

func profileHandler(svc accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := subjectFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "access token required"})
			return
		}

		acct, err := svc.Profile(c.Request.Context(), subject.AccountID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Valid token for a missing account points at store
				// corruption, not a client mistake.
				c.JSON(http.StatusNotFound, gin.H{"message": "account not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
			return
		}

		c.JSON(http.StatusOK, toAccountView(*acct))
	}
}
