package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "ZENFOCUS"

const (
	keySettleDelay          = "timer.settle_delay"
	keyTickInterval         = "timer.tick_interval"
	keyAutoStartBreak       = "timer.auto_start_break"
	keyAutoStartWork        = "timer.auto_start_work"
	keySessionCmd           = "timer.session_cmd"
	keyAmbientSound         = "sound.ambient"
	keyAlertSound           = "sound.alert"
	keyAmbientOnBreak       = "sound.ambient_on_break"
	keyMuted                = "sound.muted"
	keyTracks               = "sound.tracks"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyIdentityToken        = "identity.token"
	keyIdentityName         = "identity.name"
	keyIdentityAvatar       = "identity.avatar_url"
	keyAggregatorURL        = "aggregator.url"
	keyAggregatorTimeout    = "aggregator.timeout"
	keyServerAddr           = "server.addr"
	keyServerDBPath         = "server.db_path"
	keyServerJWTSecret      = "server.jwt_secret"
	keyServerTokenTTL       = "server.token_ttl"
	keyServerCORSOrigins    = "server.cors_origins"
	keyChatEndpoint         = "chat.endpoint"
	keyChatAPIKey           = "chat.api_key"
	keyChatBearer           = "chat.bearer"
	keyChatSystemPrompt     = "chat.system_prompt"
	keyChatMaxTokens        = "chat.max_tokens"
	keyChatTemperature      = "chat.temperature"
	keyChatTimeout          = "chat.timeout"
	keyLogLevel             = "log.level"
	keyLogMaxSize           = "log.max_size_mb"
	keyLogMaxBackups        = "log.max_backups"
)

// DefaultSystemPrompt is sent as the first message of every chat request.
const DefaultSystemPrompt = "You are a helpful AI assistant. Be concise and friendly."

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with the default values.
// ZENFOCUS_<SECTION>_<KEY> environment variables override file values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setDefaults(v)

		c.CLI.ConfigPath = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keySettleDelay, "1.5s")
	v.SetDefault(keyTickInterval, "250ms")
	v.SetDefault(keyAutoStartBreak, true)
	v.SetDefault(keyAutoStartWork, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyAmbientSound, "")
	v.SetDefault(keyAlertSound, "bell")
	v.SetDefault(keyAmbientOnBreak, false)
	v.SetDefault(keyMuted, false)
	v.SetDefault(keyTracks, map[string]string{})
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyIdentityToken, "")
	v.SetDefault(keyIdentityName, "")
	v.SetDefault(keyIdentityAvatar, "")
	v.SetDefault(keyAggregatorURL, "http://127.0.0.1:8787")
	v.SetDefault(keyAggregatorTimeout, "5s")
	v.SetDefault(keyServerAddr, ":8787")
	v.SetDefault(keyServerDBPath, "")
	v.SetDefault(keyServerJWTSecret, "")
	v.SetDefault(keyServerTokenTTL, "8760h")
	v.SetDefault(keyServerCORSOrigins, []string{})
	v.SetDefault(keyChatEndpoint, "")
	v.SetDefault(keyChatAPIKey, "")
	v.SetDefault(keyChatBearer, "")
	v.SetDefault(keyChatSystemPrompt, DefaultSystemPrompt)
	v.SetDefault(keyChatMaxTokens, 500)
	v.SetDefault(keyChatTemperature, 0.7)
	v.SetDefault(keyChatTimeout, "30s")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 3)
}

// loadViperConfig decodes the merged Viper settings into c.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	if c.Sound.Tracks == nil {
		c.Sound.Tracks = make(map[string]string)
	}

	return nil
}
