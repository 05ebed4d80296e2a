package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"catalog-backend/models"
	"catalog-backend/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productForm carries the multipart fields of create/update requests.
type productForm struct {
	Name        string
	Category    string
	SubCategory string
	Description string
	Price       float64
}

func parseProductForm(c *gin.Context) (productForm, error) {
	form := productForm{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Category:    strings.TrimSpace(c.PostForm("category")),
		SubCategory: strings.TrimSpace(c.PostForm("sub_category")),
		Description: c.PostForm("description"),
	}
	if raw := c.PostForm("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return form, fmt.Errorf("invalid price %q", raw)
		}
		form.Price = price
	}
	return form, nil
}

// missingFields lists the required fields the form left empty.
func missingFields(form productForm) []string {
	var missing []string
	if form.Name == "" {
		missing = append(missing, "name")
	}
	if form.Category == "" {
		missing = append(missing, "category")
	}
	return missing
}

// uploadedImage stores the optional image file of a multipart request.
// When the request carries no file it returns (nil, true). On upload failure
// it writes the error response itself and returns ok=false: upload failures
// abort the enclosing operation, unlike deletions.
func (ctrl *Controller) uploadedImage(ctx context.Context, c *gin.Context) (*storage.Asset, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, true
	}

	asset, err := ctrl.Media.Store(ctx, file)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedFormat) || errors.Is(err, storage.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image: " + err.Error()})
		}
		return nil, false
	}
	return asset, true
}

// ListProducts returns all products, capped to the first `limit` records when
// a positive limit query parameter is supplied.
func (ctrl *Controller) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find()
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.SetLimit(int64(n))
		}
	}

	collection := ctrl.DB.Collection("products")
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	productList := []models.Product{}
	if err = cursor.All(ctx, &productList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, productList)
}

// GetProduct returns one product by id.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	collection := ctrl.DB.Collection("products")
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct persists a new product from multipart fields plus an optional
// image upload.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	if !ctrl.requireAdmin(c) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	form, err := parseProductForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if missing := missingFields(form); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "fields": missing})
		return
	}

	asset, ok := ctrl.uploadedImage(ctx, c)
	if !ok {
		return
	}

	now := time.Now()
	product := models.Product{
		Name:        form.Name,
		Category:    form.Category,
		SubCategory: form.SubCategory,
		Description: form.Description,
		Price:       form.Price,
		Featured:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if asset != nil {
		product.ImageURL = &asset.URL
		if asset.MediaKey != "" {
			product.MediaKey = &asset.MediaKey
		}
	}

	collection := ctrl.DB.Collection("products")
	result, err := collection.InsertOne(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

// UpdateProduct replaces every editable field of an existing product. When a
// new image is supplied the previous one is released best-effort; when none
// is, the existing image fields are preserved.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	if !ctrl.requireAdmin(c) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	collection := ctrl.DB.Collection("products")
	var existing models.Product
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	form, err := parseProductForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if missing := missingFields(form); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "fields": missing})
		return
	}

	imageURL, mediaKey := existing.ImageURL, existing.MediaKey

	asset, ok := ctrl.uploadedImage(ctx, c)
	if !ok {
		return
	}
	if asset != nil {
		imageURL = &asset.URL
		mediaKey = nil
		if asset.MediaKey != "" {
			mediaKey = &asset.MediaKey
		}
		// new image stored: release the old one, log-and-continue on failure
		releaseImage(ctx, ctrl.Media, existing.MediaKey)
	}

	update := bson.M{"$set": bson.M{
		"name":         form.Name,
		"category":     form.Category,
		"sub_category": form.SubCategory,
		"description":  form.Description,
		"price":        form.Price,
		"image_url":    imageURL,
		"media_key":    mediaKey,
		"updated_at":   time.Now(),
	}}
	if _, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var updated models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ToggleFeatured updates only the featured flag.
func (ctrl *Controller) ToggleFeatured(c *gin.Context) {
	if !ctrl.requireAdmin(c) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req models.FeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "featured value is required"})
		return
	}

	collection := ctrl.DB.Collection("products")
	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"featured": *req.Featured}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var updated models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProduct releases the stored image (best-effort) and removes the record.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	if !ctrl.requireAdmin(c) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	collection := ctrl.DB.Collection("products")
	var existing models.Product
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	releaseImage(ctx, ctrl.Media, existing.MediaKey)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
