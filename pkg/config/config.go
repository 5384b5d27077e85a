package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Port           string `mapstructure:"PORT"`
	GinMode        string `mapstructure:"GIN_MODE"`
	PostgresURL    string `mapstructure:"POSTGRES_URL"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	RequestTimeout int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	AdminUsername  string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword  string `mapstructure:"ADMIN_PASSWORD"`
	CORSOrigin     string `mapstructure:"CORS_ORIGIN"`
}

func Read() *AppConfig {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	bindEnvVariables()
	setDefaults()

	var appConfig AppConfig
	err := viper.Unmarshal(&appConfig)
	if err != nil {
		panic(fmt.Errorf("fatal error unmarshalling config: %w", err))
	}

	return &appConfig
}

func bindEnvVariables() {
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("GIN_MODE")
	_ = viper.BindEnv("POSTGRES_URL")
	_ = viper.BindEnv("DB_MAX_OPEN_CONNS")
	_ = viper.BindEnv("DB_MAX_IDLE_CONNS")
	_ = viper.BindEnv("REQUEST_TIMEOUT_SECONDS")
	_ = viper.BindEnv("JWT_SECRET")
	_ = viper.BindEnv("ADMIN_USERNAME")
	_ = viper.BindEnv("ADMIN_PASSWORD")
	_ = viper.BindEnv("CORS_ORIGIN")
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("CORS_ORIGIN", "*")
}
