package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// Verification policies for tasks that require a verifier.
const (
	VerificationPolicyStrict         = "strict"
	VerificationPolicyTrustOnMissing = "trust-on-missing-verifier"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultSessionIdleTTL       = 30 * time.Minute
	defaultSessionSweepInterval = time.Minute
	defaultLinkTTL              = 10 * time.Minute
	defaultLinkMaxAttempts      = 5
	defaultLinkOTPCost          = 10
	defaultLinkRetention        = 7 * 24 * time.Hour
	defaultLinkPurgeInterval    = time.Hour
	defaultBroadcastInterval    = 40 * time.Millisecond
	defaultBroadcastBatchSize   = 200
	defaultBotTimeout           = 10 * time.Second
	defaultVerifierTimeout      = 5 * time.Second
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Bot configures the chat transport boundary
	Bot *BotConfig `json:"bot" yaml:"bot"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// Link configures chat identity to web account linking
	Link *LinkConfig `json:"link" yaml:"link"`

	Rewards *RewardsConfig `json:"rewards" yaml:"rewards"`

	// Tasks lists the completable tasks and their point values
	Tasks []TaskConfig `json:"tasks" yaml:"tasks"`

	Verification *VerificationConfig `json:"verification" yaml:"verification"`

	Moderation *ModerationConfig `json:"moderation" yaml:"moderation"`

	Broadcast *BroadcastConfig `json:"broadcast" yaml:"broadcast"`

	// QRCode configuration for link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationConfig controls schema auto-migration on startup
type MigrationConfig struct {
	Auto bool `json:"auto" yaml:"auto"`
}

// BotConfig defines the chat transport gateway settings
type BotConfig struct {
	// Shared secret expected in the X-Bot-Secret header of update webhooks
	Secret string `json:"secret" yaml:"secret"`

	// Gateway render endpoint; renders are only logged when empty
	GatewayURL string `json:"gatewayUrl" yaml:"gatewayUrl"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines conversation session retention
type SessionConfig struct {
	IdleTTL       time.Duration `json:"idleTtl" yaml:"idleTtl"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
}

// LinkConfig defines link token issuing and redemption settings
type LinkConfig struct {
	TTL           time.Duration `json:"ttl" yaml:"ttl"`
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	MaxAttempts   int           `json:"maxAttempts" yaml:"maxAttempts"`
	OTPCost       int           `json:"otpCost" yaml:"otpCost"`
	Retention     time.Duration `json:"retention" yaml:"retention"`
	PurgeInterval time.Duration `json:"purgeInterval" yaml:"purgeInterval"`
}

// RewardsConfig defines point amounts for one-time events
type RewardsConfig struct {
	Registration int64 `json:"registration" yaml:"registration"`
	Referrer     int64 `json:"referrer" yaml:"referrer"`
	Referred     int64 `json:"referred" yaml:"referred"`
}

// TaskConfig defines a single completable task
type TaskConfig struct {
	ID     string `json:"id" yaml:"id"`
	Points int64  `json:"points" yaml:"points"`
	Verify bool   `json:"verify" yaml:"verify"`
}

// VerificationConfig defines how task completion is verified.
// Policy is "strict" or "trust-on-missing-verifier".
type VerificationConfig struct {
	Policy   string        `json:"policy" yaml:"policy"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// ModerationConfig identifies the single reviewer
type ModerationConfig struct {
	ReviewerID     string `json:"reviewerId" yaml:"reviewerId"`
	ReviewerChatID string `json:"reviewerChatId" yaml:"reviewerChatId"`
}

type BroadcastConfig struct {
	Interval  time.Duration `json:"interval" yaml:"interval"`
	BatchSize int           `json:"batchSize" yaml:"batchSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
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
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section left out of the YAML file.
func (cfg *Config) ApplyDefaults() {
	if cfg.Migration == nil {
		cfg.Migration = &MigrationConfig{}
	}
	if cfg.Bot == nil {
		cfg.Bot = &BotConfig{}
	}
	if cfg.Bot.Timeout <= 0 {
		cfg.Bot.Timeout = defaultBotTimeout
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.IdleTTL <= 0 {
		cfg.Session.IdleTTL = defaultSessionIdleTTL
	}
	if cfg.Session.SweepInterval <= 0 {
		cfg.Session.SweepInterval = defaultSessionSweepInterval
	}

	if cfg.Link == nil {
		cfg.Link = &LinkConfig{}
	}
	if cfg.Link.TTL <= 0 {
		cfg.Link.TTL = defaultLinkTTL
	}
	if cfg.Link.MaxAttempts <= 0 {
		cfg.Link.MaxAttempts = defaultLinkMaxAttempts
	}
	if cfg.Link.OTPCost == 0 {
		cfg.Link.OTPCost = defaultLinkOTPCost
	}
	if cfg.Link.Retention <= 0 {
		cfg.Link.Retention = defaultLinkRetention
	}
	if cfg.Link.PurgeInterval <= 0 {
		cfg.Link.PurgeInterval = defaultLinkPurgeInterval
	}

	if cfg.Rewards == nil {
		cfg.Rewards = &RewardsConfig{}
	}

	if cfg.Verification == nil {
		cfg.Verification = &VerificationConfig{}
	}
	if cfg.Verification.Policy == "" {
		cfg.Verification.Policy = VerificationPolicyStrict
	}
	if cfg.Verification.Timeout <= 0 {
		cfg.Verification.Timeout = defaultVerifierTimeout
	}

	if cfg.Moderation == nil {
		cfg.Moderation = &ModerationConfig{}
	}

	if cfg.Broadcast == nil {
		cfg.Broadcast = &BroadcastConfig{}
	}
	if cfg.Broadcast.Interval <= 0 {
		cfg.Broadcast.Interval = defaultBroadcastInterval
	}
	if cfg.Broadcast.BatchSize <= 0 {
		cfg.Broadcast.BatchSize = defaultBroadcastBatchSize
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
}

// Task returns the configured task with the given id.
func (cfg *Config) Task(id string) (TaskConfig, bool) {
	for _, task := range cfg.Tasks {
		if task.ID == id {
			return task, true
		}
	}

	return TaskConfig{}, false
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
