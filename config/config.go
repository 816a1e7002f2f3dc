package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"warranty/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultLogLevel           = "info"
	defaultMaxRequestBodySize = "100KB"
	defaultDispatchDelay      = time.Second
	defaultReminderSchedule   = "0 9 * * *"
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
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

	// Store configuration for the warranty record store
	Store *StoreConfig `json:"store" yaml:"store"`

	// Share configuration for opening share links
	Share *ShareConfig `json:"share" yaml:"share"`

	// Reminder configuration for the scheduled reminder sweep
	Reminder *ReminderConfig `json:"reminder" yaml:"reminder"`

	// QRCode configuration for share link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for reminder event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines where warranty records are kept
type StoreConfig struct {
	// Bucket URL, e.g. "file:///var/lib/warranty?create_dir=true" or "mem://"
	URL string `json:"url" yaml:"url"`

	// Key of the single document holding every record
	Key string `json:"key" yaml:"key"`
}

// ShareConfig defines how share links are opened
type ShareConfig struct {
	// Opener type: "log" only records the link, "system" hands it to the desktop
	Opener string `json:"opener" yaml:"opener"`

	// Delay between opening the email link and the WhatsApp link when both are selected
	DispatchDelay time.Duration `json:"dispatchDelay" yaml:"dispatchDelay"`
}

// ReminderConfig defines the scheduled reminder sweep
type ReminderConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Standard five-field cron expression
	Schedule string `json:"schedule" yaml:"schedule"`

	// IANA time zone used for the schedule and for "today"
	Timezone string `json:"timezone" yaml:"timezone"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig selects where reminder events are published
type PubSubConfig struct {
	// Provider type: "webhook" posts each event as JSON, empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	WebhookURL     string        `json:"webhookURL" yaml:"webhookURL"`
	WebhookTimeout time.Duration `json:"webhookTimeout" yaml:"webhookTimeout"`
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
			// Example: SHARE_DISPATCHDELAY -> share.dispatchDelay (not share.dispatchdelay)
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

	return cfg, nil
}

// applyDefaults fills the sections and values a config file may leave out.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Env.Log.Level) == "" {
		cfg.Env.Log.Level = defaultLogLevel
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if strings.TrimSpace(cfg.Store.URL) == "" {
		cfg.Store.URL = constants.DefaultStoreURL
	}
	if strings.TrimSpace(cfg.Store.Key) == "" {
		cfg.Store.Key = constants.DefaultStoreKey
	}

	if cfg.Share == nil {
		cfg.Share = &ShareConfig{}
	}
	if cfg.Share.Opener == "" {
		cfg.Share.Opener = constants.OpenerLog
	}
	if cfg.Share.DispatchDelay <= 0 {
		cfg.Share.DispatchDelay = defaultDispatchDelay
	}

	if cfg.Reminder == nil {
		cfg.Reminder = &ReminderConfig{}
	}
	if strings.TrimSpace(cfg.Reminder.Schedule) == "" {
		cfg.Reminder.Schedule = defaultReminderSchedule
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
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
