package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	CH  CHConfig
	Obj ObjConfig
}

// CHConfig configures warehouse connectivity
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string

	// MaxExecutionSeconds caps server side query runtime, 0 leaves the server default
	MaxExecutionSeconds int

	// Guard/boot knobs:
	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// ObjConfig configures the export sink
type ObjConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLExpiry time.Duration
}
