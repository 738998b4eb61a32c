package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection             *mongo.Collection
	IngredientCollection       *mongo.Collection
	TagCollection              *mongo.Collection
	RecipeCollection           *mongo.Collection
	IngredientAmountCollection *mongo.Collection
	FavoriteCollection         *mongo.Collection
	CartCollection             *mongo.Collection
	SubscriptionCollection     *mongo.Collection
	Client                     *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("provender")
	UserCollection = database.Collection("users")
	IngredientCollection = database.Collection("ingredients")
	TagCollection = database.Collection("tags")
	RecipeCollection = database.Collection("recipes")
	IngredientAmountCollection = database.Collection("ingredient_amounts")
	FavoriteCollection = database.Collection("favorites")
	CartCollection = database.Collection("carts")
	SubscriptionCollection = database.Collection("subscriptions")
}
