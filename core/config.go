package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address         string
		DebugAddress    string
		ShutdownTimeout time.Duration
		SessionLifetime time.Duration
		Metrics         bool
	}

	InstitutionConfig struct {
		Name            string
		AcademicYear    string
		CurrentSemester string
	}

	Config struct {
		AppName      string
		Build        string
		Env          string // DEV (local; default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string

		Server      ServerConfig
		Institution InstitutionConfig
	}
)

// NewConfig loads the configuration from defaults, an optional `config/.env.<env>` file and the environment.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("appName", "CCDBMS")
	conf.SetDefault("build", "dev")
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("secretKey", "r8w!k2z$-ccdbms-dev-only-3n@f5(q)u7x#m1")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.address", ":8080")
	conf.SetDefault("server.debugAddress", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.sessionLifetime", 8*time.Hour)
	conf.SetDefault("server.metrics", true)
	conf.SetDefault("institution.name", "ABC College of Engineering")
	conf.SetDefault("institution.academicYear", "2024-2025")
	conf.SetDefault("institution.currentSemester", "Semester 1")

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("config.os.Getwd(): %v", err)
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		SecretKey:    conf.GetString("secretKey"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:         conf.GetString("server.address"),
			DebugAddress:    conf.GetString("server.debugAddress"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
			SessionLifetime: conf.GetDuration("server.sessionLifetime"),
			Metrics:         conf.GetBool("server.metrics"),
		},
		Institution: InstitutionConfig{
			Name:            conf.GetString("institution.name"),
			AcademicYear:    conf.GetString("institution.academicYear"),
			CurrentSemester: conf.GetString("institution.currentSemester"),
		},
	}
}

// NewTestConfig returns a Config suitable for tests; it does not read the environment.
func NewTestConfig() *Config {
	return &Config{
		AppName:   "CCDBMS",
		Build:     "test",
		Env:       "TEST",
		Debug:     false,
		TestMode:  true,
		SecretKey: "secret",
		Server: ServerConfig{
			ShutdownTimeout: time.Second,
			SessionLifetime: time.Hour,
			Metrics:         true,
		},
		Institution: InstitutionConfig{
			Name:            "ABC College of Engineering",
			AcademicYear:    "2024-2025",
			CurrentSemester: "Semester 1",
		},
	}
}
