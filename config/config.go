package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "8MB"
	defaultTimezone           = "UTC"
	defaultStorageBackend     = StorageLocal
	defaultAuthProvider       = AuthNone
	defaultWorkerPort         = 8090
)

// DefaultBucketURL keeps local documents under ./data, creating it on first use.
const DefaultBucketURL = "file://./data?create_dir=true"

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker serves the Pub/Sub push endpoint
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	// Postgres is only read when Storage.Backend is "postgres".
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Calendar CalendarConfig `json:"calendar" yaml:"calendar"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	// Firebase is required by the firestore backend and the firebase auth provider
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	FoodLookup *FoodLookupConfig `json:"foodLookup" yaml:"foodLookup"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Sentry *SentryConfig `json:"sentry" yaml:"sentry"`

	// Notification configures the goal alerts sent by the worker
	Notification *NotificationConfig `json:"notification" yaml:"notification"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Storage backends
const (
	StorageLocal     = "local"
	StorageFirestore = "firestore"
	StoragePostgres  = "postgres"
)

// StorageConfig selects where profiles and meals are kept
type StorageConfig struct {
	Backend string `json:"backend" yaml:"backend"`

	// BucketURL is a gocloud.dev blob URL for the local backend, e.g. file:///var/lib/myetician
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// CalendarConfig defines how instants map to calendar dates
type CalendarConfig struct {
	Timezone string `json:"timezone" yaml:"timezone"`
}

// Auth providers
const (
	AuthNone     = "none"
	AuthFirebase = "firebase"
	AuthSupabase = "supabase"
)

// Notification providers
const (
	NotificationFCM  = "fcm"
	NotificationNone = "none"
)

// AuthConfig selects the identity provider that issues bearer tokens
type AuthConfig struct {
	Provider string `json:"provider" yaml:"provider"`

	// Supabase project JWT settings, used by the supabase provider
	Supabase struct {
		JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
		Audience  string `json:"audience" yaml:"audience"`
		Issuer    string `json:"issuer" yaml:"issuer"`
	} `json:"supabase" yaml:"supabase"`
}

// FirebaseConfig defines Firebase Admin SDK configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// FoodLookupConfig defines the LLM used for food search, photo analysis and suggestions
type FoodLookupConfig struct {
	// Provider type: "gemini" or "none"
	Provider string        `json:"provider" yaml:"provider"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Model    string        `json:"model" yaml:"model"`
	// BaseURL overrides the API host, e.g. for a proxy. Empty means the SDK default.
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// SentryConfig enables error reporting when DSN is set
type SentryConfig struct {
	DSN              string  `json:"dsn" yaml:"dsn"`
	Environment      string  `json:"environment" yaml:"environment"`
	TracesSampleRate float64 `json:"tracesSampleRate" yaml:"tracesSampleRate"`
}

// NotificationConfig selects how goal alerts reach the user's devices
type NotificationConfig struct {
	// Provider type: "fcm" or "none"
	Provider string `json:"provider" yaml:"provider"`

	// TopicPrefix is prepended to the user ID to form the FCM topic each device subscribes to
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional settings and rejects combinations that cannot start.
func (c *Config) applyDefaults() error {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Worker.Port == 0 {
		c.Worker.Port = defaultWorkerPort
	}
	if strings.TrimSpace(c.Calendar.Timezone) == "" {
		c.Calendar.Timezone = defaultTimezone
	}
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return errors.Wrapf(err, "invalid calendar timezone %q", c.Calendar.Timezone)
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultStorageBackend
	}
	switch c.Storage.Backend {
	case StorageLocal:
		if c.Storage.BucketURL == "" {
			c.Storage.BucketURL = DefaultBucketURL
		}
	case StorageFirestore:
		if c.Firebase == nil {
			return errors.New("storage backend firestore requires the firebase section")
		}
	case StoragePostgres:
		if c.Postgres == nil {
			return errors.New("storage backend postgres requires the postgres section")
		}
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		c.Postgres.Replicas = buildReplicasFromEnv()
	default:
		return errors.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Auth.Provider == "" {
		c.Auth.Provider = defaultAuthProvider
	}
	switch c.Auth.Provider {
	case AuthNone:
	case AuthFirebase:
		if c.Firebase == nil {
			return errors.New("auth provider firebase requires the firebase section")
		}
	case AuthSupabase:
		if c.Auth.Supabase.JWTSecret == "" {
			return errors.New("auth provider supabase requires auth.supabase.jwtSecret")
		}
	default:
		return errors.Errorf("unknown auth provider %q", c.Auth.Provider)
	}

	if c.Notification != nil && c.Notification.Provider == NotificationFCM && c.Firebase == nil {
		return errors.New("notification provider fcm requires the firebase section")
	}

	return nil
}

// Location returns the calendar timezone. applyDefaults has already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
