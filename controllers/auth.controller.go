package controllers

import (
	"context"
	"net/http"
	"time"

	"catalog-backend/models"
	"catalog-backend/token"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// tokenValidity is the fixed lifetime of an issued credential.
const tokenValidity = 24 * time.Hour

// Login validates admin credentials and issues a signed session token.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	var admin models.Admin
	collection := ctrl.DB.Collection("admins")
	err := collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusBadRequest, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incorrect password"})
		return
	}

	signed, err := token.Issue(ctrl.TokenSecret, admin.ID.Hex(), admin.IsAdmin, tokenValidity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	// The hash never leaves the process: models.Admin excludes it from JSON.
	c.JSON(http.StatusOK, gin.H{"token": signed, "user": admin})
}
