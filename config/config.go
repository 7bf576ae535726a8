package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultCafeRange   = "Cafes!A2:R1000"
	defaultRatingRange = "Ratings!A2:J1000"
)

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

	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	// Sheets configures the Google Sheets backing store. SpreadsheetID and one
	// credential source are mandatory; the store constructor rejects anything less.
	Sheets *SheetsConfig `json:"sheets" yaml:"sheets"`

	// RateLimit bounds outbound Sheets API traffic.
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Cache controls read caching and background revalidation.
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Retry controls the retry schedule for transient store failures.
	Retry *RetryConfig `json:"retry" yaml:"retry"`

	// Connectivity configures the reachability probe consulted before store calls.
	Connectivity *ConnectivityConfig `json:"connectivity" yaml:"connectivity"`

	// Session configures anonymous contributor session tokens.
	Session *SessionConfig `json:"session" yaml:"session"`

	// Curator guards bulk-import and verification endpoints.
	Curator *CuratorConfig `json:"curator" yaml:"curator"`

	// Media configures photo upload storage.
	Media *MediaConfig `json:"media" yaml:"media"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Push configures the worker that fans events out as push notifications.
	Push *PushConfig `json:"push" yaml:"push"`

	// QRCode configuration for cafe share QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SheetsConfig defines the Google Sheets store configuration
type SheetsConfig struct {
	// Spreadsheet that holds the Cafes and Ratings sheets
	SpreadsheetID string `json:"spreadsheetId" yaml:"spreadsheetId"`

	// Path to a service account JSON file. Takes precedence over APIKey.
	CredentialsFile string `json:"credentialsFile" yaml:"credentialsFile"`

	// API key for read-mostly deployments without a service account
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// A1 ranges read and appended by the store
	CafeRange   string `json:"cafeRange" yaml:"cafeRange"`
	RatingRange string `json:"ratingRange" yaml:"ratingRange"`

	// Per-call deadline applied to every Sheets API request
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// RateLimitConfig defines the sliding-window admission limit for the Sheets API
type RateLimitConfig struct {
	MaxRequests int           `json:"maxRequests" yaml:"maxRequests"`
	Window      time.Duration `json:"window" yaml:"window"`
}

// CacheConfig defines read cache freshness and retention
type CacheConfig struct {
	// Entries younger than FreshFor are served without refetching
	FreshFor time.Duration `json:"freshFor" yaml:"freshFor"`

	// Entries unused for longer than RetainFor are evicted
	RetainFor time.Duration `json:"retainFor" yaml:"retainFor"`

	// Interval of the background revalidation sweep
	RevalidateEvery time.Duration `json:"revalidateEvery" yaml:"revalidateEvery"`
}

// RetryConfig defines the retry schedule for transient store failures
type RetryConfig struct {
	// Extra attempts after the initial read failure
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`

	// First retry delay; doubled per attempt up to MaxDelay
	BaseDelay time.Duration `json:"baseDelay" yaml:"baseDelay"`
	MaxDelay  time.Duration `json:"maxDelay" yaml:"maxDelay"`

	// Fixed delay before the single mutation retry
	MutationDelay time.Duration `json:"mutationDelay" yaml:"mutationDelay"`
}

// ConnectivityConfig defines the reachability probe
type ConnectivityConfig struct {
	ProbeURL     string        `json:"probeUrl" yaml:"probeUrl"`
	ProbeTimeout time.Duration `json:"probeTimeout" yaml:"probeTimeout"`

	// Probe results are reused for this long before probing again
	CacheFor time.Duration `json:"cacheFor" yaml:"cacheFor"`
}

// SessionConfig defines anonymous session token issuance
type SessionConfig struct {
	Secret string        `json:"secret" yaml:"secret"`
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
}

// CuratorConfig defines the shared-key guard for curator endpoints.
// An empty KeyHash disables those endpoints entirely.
type CuratorConfig struct {
	// bcrypt hash of the curator API key
	KeyHash string `json:"keyHash" yaml:"keyHash"`
}

// MediaConfig defines photo upload storage
type MediaConfig struct {
	// Bucket URL understood by gocloud.dev/blob (file://, gs://, s3://, mem://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public prefix prepended to stored object keys when building photo URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "google" for Google Pub/Sub, "local" for local HTTP, "noop" to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PushConfig defines how cafe events become push notifications
type PushConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// FCM topic prefix; the city slug is appended per event
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
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
			// Example: SHEETS_SPREADSHEETID -> sheets.spreadsheetId (not sheets.spreadsheetid)
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

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills optional sections and zero fields. Sections whose absence
// must fail construction downstream (Sheets, Session) are left untouched.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = 8081
	}

	if cfg.Sheets != nil {
		if cfg.Sheets.CafeRange == "" {
			cfg.Sheets.CafeRange = defaultCafeRange
		}
		if cfg.Sheets.RatingRange == "" {
			cfg.Sheets.RatingRange = defaultRatingRange
		}
		if cfg.Sheets.RequestTimeout <= 0 {
			cfg.Sheets.RequestTimeout = 30 * time.Second
		}
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.MaxRequests <= 0 {
		cfg.RateLimit.MaxRequests = 300
	}
	if cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = time.Minute
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.FreshFor <= 0 {
		cfg.Cache.FreshFor = 5 * time.Minute
	}
	if cfg.Cache.RetainFor <= 0 {
		cfg.Cache.RetainFor = 10 * time.Minute
	}
	if cfg.Cache.RevalidateEvery <= 0 {
		cfg.Cache.RevalidateEvery = 15 * time.Minute
	}

	if cfg.Retry == nil {
		cfg.Retry = &RetryConfig{}
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry.MaxAttempts = 3
	}
	if cfg.Retry.BaseDelay <= 0 {
		cfg.Retry.BaseDelay = time.Second
	}
	if cfg.Retry.MaxDelay <= 0 {
		cfg.Retry.MaxDelay = 30 * time.Second
	}
	if cfg.Retry.MutationDelay <= 0 {
		cfg.Retry.MutationDelay = 2 * time.Second
	}

	if cfg.Connectivity == nil {
		cfg.Connectivity = &ConnectivityConfig{}
	}
	if cfg.Connectivity.ProbeURL == "" {
		cfg.Connectivity.ProbeURL = "https://clients3.google.com/generate_204"
	}
	if cfg.Connectivity.ProbeTimeout <= 0 {
		cfg.Connectivity.ProbeTimeout = 5 * time.Second
	}
	if cfg.Connectivity.CacheFor <= 0 {
		cfg.Connectivity.CacheFor = 10 * time.Second
	}

	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if cfg.Media.BucketURL == "" {
		cfg.Media.BucketURL = "file://./data/media?create_dir=1"
	}
	if cfg.Media.PublicBaseURL == "" {
		cfg.Media.PublicBaseURL = "http://localhost:8080/media"
	}
	if cfg.Media.MaxUploadBytes <= 0 {
		cfg.Media.MaxUploadBytes = 5 << 20
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: "noop"}
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.TopicPrefix == "" {
		cfg.Push.TopicPrefix = "cafes-"
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "medium"
	}
	if cfg.QRCode.BaseURL == "" {
		cfg.QRCode.BaseURL = "https://ngopi.app"
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
