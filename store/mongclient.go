package store

import (
	ctx "context"
	"fmt"
	"log"

	"github.com/avast/retry-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JSON map[string]any

const _CONNECT_RETRY_ATTEMPTS = 3

type Store[T any] struct {
	name       string
	collection *mongo.Collection
}

func New[T any](connection_string, database, collection string) *Store[T] {
	client := createMongoClient(connection_string)
	if client == nil {
		return nil
	}
	return &Store[T]{
		name:       fmt.Sprintf("%s/%s", database, collection),
		collection: client.Database(database).Collection(collection),
	}
}

// Insert writes one document and hands back the store assigned id.
// Every insert gets a distinct id, even for identical documents.
func (store *Store[T]) Insert(doc T) (primitive.ObjectID, error) {
	res, err := store.collection.InsertOne(ctx.Background(), doc)
	if err != nil {
		log.Printf("[%s]: Insertion failed. %v\n", store.name, err)
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// GetByID reads one document back by its id. An inserted document is readable
// by its id the moment Insert returns.
func (store *Store[T]) GetByID(id primitive.ObjectID) (*T, error) {
	var doc T
	if err := store.collection.FindOne(ctx.Background(), JSON{"_id": id}).Decode(&doc); err != nil {
		log.Printf("[%s]: Retrieval failed for %s. %v\n", store.name, id.Hex(), err)
		return nil, err
	}
	return &doc, nil
}

func (store *Store[T]) Get(filter JSON, sort_by JSON, top_n int) []T {
	find_options := options.Find()
	if len(sort_by) > 0 {
		find_options = find_options.SetSort(sort_by)
	}
	if top_n > 0 {
		find_options = find_options.SetLimit(int64(top_n))
	}
	return store.extractFromCursor(store.collection.Find(ctx.Background(), filter, find_options))
}

func (store *Store[T]) extractFromCursor(cursor *mongo.Cursor, err error) []T {
	background := ctx.Background()
	if err != nil {
		log.Printf("[%s]: Couldn't retrieve items. %v\n", store.name, err)
		return nil
	}
	defer cursor.Close(background)

	// unmarshall
	var contents []T
	if err = cursor.All(background, &contents); err != nil {
		log.Println(err)
		return nil
	}
	return contents
}

// the connection string points to a db that may still be coming up when this
// process starts. retry the ping a few times before giving up.
func createMongoClient(connection_string string) *mongo.Client {
	var client *mongo.Client
	err := retry.Do(
		func() error {
			var conn_err error
			if client, conn_err = mongo.Connect(ctx.Background(), options.Client().ApplyURI(connection_string)); conn_err != nil {
				return conn_err
			}
			return client.Ping(ctx.Background(), nil)
		},
		retry.Attempts(_CONNECT_RETRY_ATTEMPTS),
	)
	if err != nil {
		log.Println("[mongoclient]", err)
		return nil
	}
	return client
}
