package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"permission-bot/internal/utils/runtime"
)

const (
	kafkaHostFlag       = "kafka-host"
	kafkaPortFlag       = "kafka-port"
	mongoDBURIFlag      = "mongodb-uri"
	settingsBackendFlag = "settings-backend"
	settingsPathFlag    = "settings-path"
	botOwnerFlag        = "bot-owner"
	developmentFlag     = "development"
)

// Settings backends for the permission document.
const (
	BackendFile  = "file"
	BackendMongo = "mongo"
)

type Config struct {
	Kafka    KafkaConfig
	MongoDB  MongoDBConfig
	Settings SettingsConfig

	// BotOwner is the platform user id of the bot owner. The owner bypasses
	// all stored permission checks, like thread admins do.
	BotOwner string

	Development bool
}

type KafkaConfig struct {
	Host string
	Port int
}

type MongoDBConfig struct {
	URI string
}

type SettingsConfig struct {
	Backend string
	Path    string
}

func LoadGlobalConfig() Config {
	viper.SetDefault(kafkaHostFlag, "localhost")
	viper.SetDefault(kafkaPortFlag, 9092)
	viper.SetDefault(mongoDBURIFlag, "mongodb://localhost:27017")
	viper.SetDefault(settingsBackendFlag, BackendFile)
	viper.SetDefault(settingsPathFlag, "settings.json")
	viper.SetDefault(botOwnerFlag, "")
	viper.SetDefault(developmentFlag, true)

	pflag.String(kafkaHostFlag, viper.GetString(kafkaHostFlag), "Kafka host")
	pflag.Int32(kafkaPortFlag, viper.GetInt32(kafkaPortFlag), "Kafka port")
	pflag.String(mongoDBURIFlag, viper.GetString(mongoDBURIFlag), "MongoDB URI")
	pflag.String(settingsBackendFlag, viper.GetString(settingsBackendFlag), "Settings backend (file or mongo)")
	pflag.String(settingsPathFlag, viper.GetString(settingsPathFlag), "Path of the settings document (file backend)")
	pflag.String(botOwnerFlag, viper.GetString(botOwnerFlag), "Platform user id of the bot owner")
	pflag.Bool(developmentFlag, viper.GetBool(developmentFlag), "Development mode")
	pflag.Parse()

	// Bind the viper flags to environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	runtime.Must(viper.BindEnv(kafkaHostFlag))
	runtime.Must(viper.BindEnv(kafkaPortFlag))
	runtime.Must(viper.BindEnv(mongoDBURIFlag))
	runtime.Must(viper.BindEnv(settingsBackendFlag))
	runtime.Must(viper.BindEnv(settingsPathFlag))
	runtime.Must(viper.BindEnv(botOwnerFlag))
	runtime.Must(viper.BindEnv(developmentFlag))

	return Config{
		Kafka: KafkaConfig{
			Host: viper.GetString(kafkaHostFlag),
			Port: int(viper.GetInt32(kafkaPortFlag)),
		},
		MongoDB: MongoDBConfig{
			URI: viper.GetString(mongoDBURIFlag),
		},
		Settings: SettingsConfig{
			Backend: viper.GetString(settingsBackendFlag),
			Path:    viper.GetString(settingsPathFlag),
		},
		BotOwner:    viper.GetString(botOwnerFlag),
		Development: viper.GetBool(developmentFlag),
	}
}
