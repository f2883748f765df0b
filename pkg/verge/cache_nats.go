package verge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
)

// NATSKVConfig configures the NATS JetStream key-value cache backend,
// used when multiple processes should share one name/key lookup cache.
type NATSKVConfig struct {
	// URL is the NATS server URL (e.g. nats://localhost:4222).
	URL string
	// Bucket is the KV bucket name; created if it does not exist.
	Bucket string
	// Credentials is an optional NATS credentials file path.
	Credentials string
}

// NATSKVCache is a Cache backed by a NATS JetStream key-value bucket.
type NATSKVCache struct {
	conn   *nats.Conn
	bucket nats.KeyValue
}

// Static errors for the NATS backend.
var (
	ErrNATSURLRequired    = errors.New("NATS URL is required")
	ErrNATSBucketRequired = errors.New("NATS bucket name is required")
)

// NewNATSKVCache connects to NATS and binds (or creates) the KV bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil || config.URL == "" {
		return nil, ErrNATSURLRequired
	}

	if config.Bucket == "" {
		return nil, ErrNATSBucketRequired
	}

	var opts []nats.Option
	if config.Credentials != "" {
		opts = append(opts, nats.UserCredentials(config.Credentials))
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	jetStream, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("getting JetStream context: %w", err)
	}

	bucket, err := jetStream.KeyValue(config.Bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		bucket, err = jetStream.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: config.Bucket,
		})
	}

	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("binding KV bucket %q: %w", config.Bucket, err)
	}

	return &NATSKVCache{conn: conn, bucket: bucket}, nil
}

// Get retrieves a cached value.
func (c *NATSKVCache) Get(ctx context.Context, key string) (string, error) {
	entry, err := c.bucket.Get(encodeKVKey(key))
	if errors.Is(err, nats.ErrKeyNotFound) {
		return "", ErrCacheKeyNotFound
	}

	if err != nil {
		return "", fmt.Errorf("getting KV entry: %w", err)
	}

	return string(entry.Value()), nil
}

// Set stores a value.
func (c *NATSKVCache) Set(ctx context.Context, key, value string) error {
	_, err := c.bucket.Put(encodeKVKey(key), []byte(value))
	if err != nil {
		return fmt.Errorf("putting KV entry: %w", err)
	}

	return nil
}

// Delete removes a value.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.bucket.Delete(encodeKVKey(key))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting KV entry: %w", err)
	}

	return nil
}

// Clear removes all values in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.bucket.Keys()
	if errors.Is(err, nats.ErrNoKeysFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("listing KV keys: %w", err)
	}

	for _, key := range keys {
		err = c.bucket.Delete(key)
		if err != nil {
			return fmt.Errorf("deleting KV entry: %w", err)
		}
	}

	return nil
}

// Has checks for a key without returning its value.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.bucket.Get(encodeKVKey(key))

	return err == nil
}

// Close releases the NATS connection.
func (c *NATSKVCache) Close() {
	c.conn.Close()
}

// encodeKVKey maps cache keys onto the NATS KV key alphabet. Resource
// names may contain characters NATS rejects; spaces and slashes are the
// common offenders.
func encodeKVKey(key string) string {
	replacer := strings.NewReplacer(" ", "_", "/", ".", "*", "_", ">", "_")

	return replacer.Replace(key)
}
