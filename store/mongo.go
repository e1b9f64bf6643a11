package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultDatabase is used when the connection string does not name a database
const DefaultDatabase = "portfolio_contacts"

const pingTimeout = 10 * time.Second

// MongoStore writes records to MongoDB. The underlying client keeps its own
// connection pool and is safe for concurrent use.
type MongoStore struct {
	client *mongo.Client
	dbName string
}

// ConnectMongo creates the MongoDB client. The driver connects lazily, so an
// unreachable server does not fail here; call Ping to find out.
func ConnectMongo(ctx context.Context, uri string) (*MongoStore, error) {
	dbName, err := DatabaseFromURI(uri)
	if err != nil {
		return nil, err
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return NewMongoStore(client, dbName), nil
}

// NewMongoStore wraps an existing client
func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	if dbName == "" {
		dbName = DefaultDatabase
	}
	return &MongoStore{client: client, dbName: dbName}
}

// DatabaseFromURI returns the database named in the connection string path,
// or DefaultDatabase if there is none.
func DatabaseFromURI(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("invalid mongodb uri: %w", err)
	}
	if cs.Database == "" {
		return DefaultDatabase, nil
	}
	return cs.Database, nil
}

// Database returns the name of the database records are written to
func (s *MongoStore) Database() string {
	return s.dbName
}

// Ping checks that the server is reachable
func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return nil
}

// Insert writes one document. The id is generated by the driver.
func (s *MongoStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	if collection == "" {
		return "", ErrNoCollection
	}

	res, err := s.client.Database(s.dbName).Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return idString(res.InsertedID), nil
}

// Disconnect closes the pool
func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func idString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
