package controllers

import (
	"context"
	"log"
	"net/http"

	"catalog-backend/middleware"
	"catalog-backend/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Controller holds the dependencies shared by all handlers: the store
// connection, the media backend and the credential signing key. All three
// are built once at startup and reused for the process lifetime.
type Controller struct {
	DB          *mongo.Database
	Media       storage.Storage
	TokenSecret []byte
}

// requireAdmin enforces the admin claim on mutating routes. Writes the 403
// response itself and returns false when the caller lacks the claim.
func (ctrl *Controller) requireAdmin(c *gin.Context) bool {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || !claims.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
		return false
	}
	return true
}

// releaseImage deletes a stored image best-effort. Failures are logged and
// swallowed: losing a media cleanup must never fail the enclosing operation.
func releaseImage(ctx context.Context, media storage.Storage, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := media.Delete(ctx, *key); err != nil {
		log.Printf("media delete failed for key %s: %v", *key, err)
	}
}
