package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"catalog-backend/config"
	"catalog-backend/controllers"
	"catalog-backend/routes"
	"catalog-backend/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database("catalog")

	media, err := storage.New(cfg)
	if err != nil {
		log.Fatal("initializing media backend: ", err)
	}

	if err := seedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("seeding admin account: ", err)
	}

	ctrl := &controllers.Controller{
		DB:          db,
		Media:       media,
		TokenSecret: cfg.TokenSecretKey,
	}

	r := routes.Setup(ctrl, cfg)

	fmt.Printf("🚀 Catalog backend listening on http://localhost:%s\n", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}

// seedAdmin creates the admin account out-of-band when seed credentials are
// configured and no account with that email exists yet. Admin accounts are
// never created through the HTTP surface.
func seedAdmin(db *mongo.Database, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("admins")
	err := collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = collection.InsertOne(ctx, bson.M{
		"email":      email,
		"password":   string(hash),
		"is_admin":   true,
		"created_at": time.Now(),
	})
	if err != nil {
		return err
	}

	log.Printf("👤 Seeded admin account %s", email)
	return nil
}
