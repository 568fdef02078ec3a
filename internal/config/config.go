package config

import "github.com/jinzhu/configor"

type Config struct {
	AppConfig AppConfig `env:"APPCONFIG"`
	DBConfig  DBConfig  `env:"DBCONFIG"`
	JWTConfig JWTConfig `env:"JWTCONFIG"`
}

type AppConfig struct {
	APPName string `default:"englishquest"`
	Port    int    `default:"8080" env:"APP_PORT"`
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"englishquest" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `default:"postgres" env:"DBPASSWORD"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

type JWTConfig struct {
	// Secret signs every access token. Override it outside local dev.
	Secret     string `default:"change-me-in-production" env:"JWT_SECRET"`
	TTLMinutes int    `default:"30" env:"JWT_TTL_MINUTES"`
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config)
	return config
}
