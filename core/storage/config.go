package storage

// Config describes the object store holding statements and snapshots.
type Config struct {
	// Endpoint is host:port of the S3-compatible service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey and SecretKey authenticate against the store.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL switches the client to https.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds ingested statements and holdings snapshots.
	Bucket string `mapstructure:"bucket" default:"statements"`
	// Region is passed through to bucket creation; empty means the server default.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds the bucket probe made on connect.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxObjectBytes caps the size of a statement or snapshot read into memory.
	MaxObjectBytes int64 `mapstructure:"max_object_bytes" default:"33554432"`
}
