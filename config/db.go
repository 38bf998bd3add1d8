// config/db.go
package config

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB establishes connection to MongoDB
func ConnectDB() *mongo.Client {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGODB_URI")
	}

	// Only use the Docker service name as a fallback in development
	if mongoURI == "" {
		env := os.Getenv("ENV")
		if env == "development" || env == "dev" {
			mongoURI = "mongodb://mongodb:27017"
		} else {
			log.Fatal("MONGO_URI or MONGODB_URI environment variable is required for production")
		}
	}

	log.Printf("Connecting to MongoDB at: %s", maskMongoURI(mongoURI))

	clientOptions := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("MongoDB ping error:", err)
	}

	log.Println("Connected to MongoDB")

	setupCollections(client)

	return client
}

// DBName returns the configured database name.
func DBName() string {
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "hirehub"
	}
	return dbName
}

// GetCollection returns a MongoDB collection from the configured database.
func GetCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database(DBName()).Collection(collectionName)
}

// setupCollections ensures all necessary collections and indexes exist
func setupCollections(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(DBName())

	collections := []string{"employees", "departments", "lookups", "resourceRequests", "skills", "notifications", "counters"}
	for _, collName := range collections {
		db.CreateCollection(ctx, collName)
	}

	employeeColl := db.Collection("employees")
	for _, model := range []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "employeeId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	} {
		if _, err := employeeColl.Indexes().CreateOne(ctx, model); err != nil {
			log.Printf("Error creating employee index: %v", err)
		}
	}

	requestColl := db.Collection("resourceRequests")
	for _, model := range []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "resourceRequestId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "status", Value: 1}},
		},
	} {
		if _, err := requestColl.Indexes().CreateOne(ctx, model); err != nil {
			log.Printf("Error creating resource request index: %v", err)
		}
	}

	lookupColl := db.Collection("lookups")
	lookupIndexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}, {Key: "lookupId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := lookupColl.Indexes().CreateOne(ctx, lookupIndexModel); err != nil {
		log.Printf("Error creating lookup index: %v", err)
	}

	skillColl := db.Collection("skills")
	skillIndexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "skillName", Value: 1}},
	}
	if _, err := skillColl.Indexes().CreateOne(ctx, skillIndexModel); err != nil {
		log.Printf("Error creating skill index: %v", err)
	}

	log.Println("Database collections and indexes setup complete")
}

// NextSequence returns the next value of a named integer sequence, backed by
// the counters collection. Used for the business-facing ResourceRequestID
// and per-category lookup IDs.
func NextSequence(ctx context.Context, client *mongo.Client, name string) (int, error) {
	coll := GetCollection(client, "counters")

	var doc struct {
		Value int `bson:"value"`
	}
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Value, nil
}

// maskMongoURI masks the password in MongoDB URI for logging
func maskMongoURI(uri string) string {
	if idx := strings.Index(uri, "@"); idx > 0 {
		if colonIdx := strings.LastIndex(uri[:idx], ":"); colonIdx > 0 {
			return uri[:colonIdx+1] + "***" + uri[idx:]
		}
	}
	return uri
}
