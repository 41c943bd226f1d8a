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
	defaultMaxRequestBodySize = "100KB"
	defaultCookieName         = "sid"
	defaultNicknameMinLength  = 2
	defaultStorageDriver      = StorageDriverMemory
)

// Storage drivers
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the external API that owns users, tokens and profiles
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Frontend holds the browser-facing URLs the gateway redirects to
	Frontend *FrontendConfig `json:"frontend" yaml:"frontend"`

	Cookie *CookieConfig `json:"cookie" yaml:"cookie"`

	OAuth *OAuthConfig `json:"oauth" yaml:"oauth"`

	Callback *CallbackConfig `json:"callback" yaml:"callback"`

	// Storage selects where bearer tokens survive restarts: memory, postgres or sqlite
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// PubSub configuration for entitlement sync events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig defines how the external API is reached
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// FrontendConfig defines redirect targets after a callback resolves
type FrontendConfig struct {
	BaseURL            string `json:"baseUrl" yaml:"baseUrl"`
	HomePath           string `json:"homePath" yaml:"homePath"`
	AdditionalInfoPath string `json:"additionalInfoPath" yaml:"additionalInfoPath"`
}

// HomeURL returns the absolute entry page URL.
func (f *FrontendConfig) HomeURL() string {
	return strings.TrimRight(f.BaseURL, "/") + f.HomePath
}

// AdditionalInfoURL returns the completion page URL for a provider.
func (f *FrontendConfig) AdditionalInfoURL(provider string) string {
	return strings.TrimRight(f.BaseURL, "/") + f.AdditionalInfoPath + "?provider=" + provider
}

// CookieConfig defines the client session cookie
type CookieConfig struct {
	Name   string        `json:"name" yaml:"name"`
	Domain string        `json:"domain" yaml:"domain"`
	Secure bool          `json:"secure" yaml:"secure"`
	MaxAge time.Duration `json:"maxAge" yaml:"maxAge"`
}

// OAuthConfig groups the per-provider credentials
type OAuthConfig struct {
	Kakao ProviderConfig `json:"kakao" yaml:"kakao"`
	Naver ProviderConfig `json:"naver" yaml:"naver"`
	Apple AppleConfig    `json:"apple" yaml:"apple"`
}

// ProviderConfig defines a redirect-based OAuth provider
type ProviderConfig struct {
	Enabled      bool   `json:"enabled" yaml:"enabled"`
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURL  string `json:"redirectUrl" yaml:"redirectUrl"`

	// Endpoint overrides, empty means the provider's public endpoint
	AuthURL    string `json:"authUrl" yaml:"authUrl"`
	TokenURL   string `json:"tokenUrl" yaml:"tokenUrl"`
	ProfileURL string `json:"profileUrl" yaml:"profileUrl"`
}

// AppleConfig defines Sign in with Apple. The client secret is minted from the team key.
type AppleConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	ClientID    string `json:"clientId" yaml:"clientId"`
	RedirectURL string `json:"redirectUrl" yaml:"redirectUrl"`
	AuthURL     string `json:"authUrl" yaml:"authUrl"`
	TokenURL    string `json:"tokenUrl" yaml:"tokenUrl"`
	KeysURL     string `json:"keysUrl" yaml:"keysUrl"`

	TeamID         string `json:"teamId" yaml:"teamId"`
	KeyID          string `json:"keyId" yaml:"keyId"`
	PrivateKeyPath string `json:"privateKeyPath" yaml:"privateKeyPath"`
}

// CallbackConfig defines callback reconciliation limits
type CallbackConfig struct {
	MarkerTTL         time.Duration `json:"markerTtl" yaml:"markerTtl"`
	StateTTL          time.Duration `json:"stateTtl" yaml:"stateTtl"`
	PendingTTL        time.Duration `json:"pendingTtl" yaml:"pendingTtl"`
	NicknameMinLength int           `json:"nicknameMinLength" yaml:"nicknameMinLength"`
	SyncTimeout       time.Duration `json:"syncTimeout" yaml:"syncTimeout"`
}

// StorageConfig selects the durable token store
type StorageConfig struct {
	Driver     string `json:"driver" yaml:"driver"`
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`
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

	applyDefaults(cfg)

	if cfg.Backend.BaseURL == "" {
		return nil, errors.New("backend.baseUrl is required")
	}

	if cfg.Storage.Driver == StorageDriverPostgres {
		if cfg.Postgres == nil {
			return nil, errors.New("postgres section is required for postgres storage")
		}
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Backend == nil {
		cfg.Backend = &BackendConfig{}
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = 10 * time.Second
	}
	if cfg.Frontend == nil {
		cfg.Frontend = &FrontendConfig{}
	}
	if cfg.Frontend.HomePath == "" {
		cfg.Frontend.HomePath = "/"
	}
	if cfg.Frontend.AdditionalInfoPath == "" {
		cfg.Frontend.AdditionalInfoPath = "/auth/additional-info"
	}
	if cfg.Cookie == nil {
		cfg.Cookie = &CookieConfig{}
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = defaultCookieName
	}
	if cfg.Cookie.MaxAge <= 0 {
		cfg.Cookie.MaxAge = 30 * 24 * time.Hour
	}
	if cfg.OAuth == nil {
		cfg.OAuth = &OAuthConfig{}
	}
	if cfg.Callback == nil {
		cfg.Callback = &CallbackConfig{}
	}
	if cfg.Callback.MarkerTTL <= 0 {
		cfg.Callback.MarkerTTL = 30 * time.Minute
	}
	if cfg.Callback.StateTTL <= 0 {
		cfg.Callback.StateTTL = 10 * time.Minute
	}
	if cfg.Callback.PendingTTL <= 0 {
		cfg.Callback.PendingTTL = 30 * time.Minute
	}
	if cfg.Callback.NicknameMinLength <= 0 {
		cfg.Callback.NicknameMinLength = defaultNicknameMinLength
	}
	if cfg.Callback.SyncTimeout <= 0 {
		cfg.Callback.SyncTimeout = 5 * time.Second
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultStorageDriver
	}
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
