// Package catalog persists container snapshots into MongoDB so scans over
// large media trees can be queried later. Entries are upserted by file
// path; every scan run stamps its entries with one session ID.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/torre76/mediahound/mediainfo"
)

// Private constants (alphabetical)
const (
	// errorPrefix is used as a prefix for all error messages from this
	// package.
	errorPrefix = "catalog: "
)

// Public types (alphabetical)

// Catalog is a handle on one MongoDB collection of scan entries.
type Catalog struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     zerolog.Logger
}

// Entry is one cataloged media file.
type Entry struct {
	// ID is the MongoDB document identifier.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// SessionID identifies the scan run that produced the entry.
	SessionID string `bson:"session_id" json:"session_id"`

	// Path is the file path the entry was scanned from; entries are
	// upserted by it.
	Path string `bson:"path" json:"path"`

	// ScannedAt is the time the file was analyzed.
	ScannedAt time.Time `bson:"scanned_at" json:"scanned_at"`

	// Container is the materialized snapshot of the file.
	Container *mediainfo.ContainerInfo `bson:"container" json:"container"`
}

// Option configures a Catalog handle.
type Option func(*Catalog)

// Public functions (alphabetical)

// Connect dials MongoDB, verifies the connection, and returns a handle on
// the given database and collection.
func Connect(ctx context.Context, uri, database, collection string, opts ...Option) (*Catalog, error) {
	c := &Catalog{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, FormatError("connecting to %s: %w", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, FormatError("pinging %s: %w", uri, err)
	}

	c.client = client
	c.collection = client.Database(database).Collection(collection)
	c.logger.Info().
		Str("database", database).
		Str("collection", collection).
		Msg("catalog connected")
	return c, nil
}

// FormatError creates a standardized error message with the package
// prefix.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}

// NewEntry builds a catalog entry for one analyzed file, stamped with the
// session ID and the current time.
func NewEntry(sessionID uuid.UUID, path string, container *mediainfo.ContainerInfo) Entry {
	return Entry{
		SessionID: sessionID.String(),
		Path:      path,
		ScannedAt: time.Now().UTC(),
		Container: container,
	}
}

// WithLogger sets the logger the catalog reports operations to. The
// default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// Public methods (alphabetical)

// Close disconnects from MongoDB.
func (c *Catalog) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return FormatError("disconnecting: %w", err)
	}
	return nil
}

// Store upserts an entry by file path, so rescanning a tree refreshes
// existing documents instead of duplicating them.
func (c *Catalog) Store(ctx context.Context, entry Entry) error {
	update := bson.M{"$set": bson.M{
		"session_id": entry.SessionID,
		"path":       entry.Path,
		"scanned_at": entry.ScannedAt,
		"container":  entry.Container,
	}}
	result, err := c.collection.UpdateOne(ctx, bson.M{"path": entry.Path}, update, options.Update().SetUpsert(true))
	if err != nil {
		return FormatError("storing %s: %w", entry.Path, err)
	}
	c.logger.Debug().
		Str("path", entry.Path).
		Int64("matched", result.MatchedCount).
		Int64("upserted", result.UpsertedCount).
		Msg("entry stored")
	return nil
}
