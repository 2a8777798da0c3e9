package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewlens/auth"
)

// Login checks the dashboard credentials and hands back a session
// token for the Authorization header.
func Login(c *gin.Context, svc *auth.Service) {
	var request struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := svc.Login(request.Username, request.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout drops the current session.
func Logout(c *gin.Context, svc *auth.Service) {
	svc.Logout(c.GetHeader("Authorization"))
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
