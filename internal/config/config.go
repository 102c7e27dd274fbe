package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, PWDSTRENGTH_PORT and so on.
const EnvPrefix = "PWDSTRENGTH"

type Config struct {
	// client side
	Endpoint       string        `mapstructure:"ENDPOINT" validate:"required,url"`
	Debounce       time.Duration `mapstructure:"DEBOUNCE" validate:"gt=0"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT" validate:"gte=0"`
	RetryMax       int           `mapstructure:"RETRY_MAX" validate:"gte=0,lte=10"`
	// server side
	Port            uint16   `mapstructure:"PORT" validate:"required"`
	Strategy        string   `mapstructure:"STRATEGY" validate:"oneof=rules zxcvbn hybrid"`
	CommonPasswords string   `mapstructure:"COMMON_PASSWORDS"`
	CacheSize       int64    `mapstructure:"CACHE_SIZE" validate:"gte=0"`
	AllowedOrigins  []string `mapstructure:"ALLOWED_ORIGINS"`
	SelfTLS         bool     `mapstructure:"SELF_TLS"`
	TLSCert         string   `mapstructure:"TLS_CERT" validate:"required_with=TLSKey"`
	TLSKey          string   `mapstructure:"TLS_KEY" validate:"required_with=TLSCert"`
	Debug           bool     `mapstructure:"DEBUG"`
}

func setDefaults() {
	viper.SetDefault("ENDPOINT", "http://localhost:8000")
	viper.SetDefault("DEBOUNCE", 300*time.Millisecond)
	viper.SetDefault("REQUEST_TIMEOUT", 10*time.Second)
	viper.SetDefault("RETRY_MAX", 0)
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("STRATEGY", "rules")
	viper.SetDefault("COMMON_PASSWORDS", "common_passwords.txt")
	viper.SetDefault("CACHE_SIZE", 10_000)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:8000", "http://127.0.0.1:8000"})
}

func bindEnvs(iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch v.Kind() {
		case reflect.Struct:
			bindEnvs(v.Interface(), append(parts, tv)...)
		default:
			_ = viper.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_with":
		return fmt.Sprintf("This field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	case "url":
		return "This field must be an absolute URL"
	case "oneof":
		return fmt.Sprintf("This field must be one of [%s]", fe.Param())
	case "gt", "gte", "lte":
		return fmt.Sprintf("This field must be %s %s", fe.Tag(), fe.Param())
	}
	return fe.Error() // default error
}

// Load reads the configuration from the environment, and from a .env file in the
// working directory when there is one. Values bound to flags with viper.BindPFlag
// take precedence.
func Load() (config Config, err error) {
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults()

	// I hate this, but it works.
	// This is to not require a config file to unmarshal Envs in a struct
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	config = Config{}
	bindEnvs(config)

	if err = viper.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("reading configuration: %w", err)
	}

	if err = Validate(config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the configuration and names offending variables the way they
// are set in the environment.
func Validate(config Config) error {
	validate := validator.New()
	err := validate.Struct(&config)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var msgs []string
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("%s_%s: %s", EnvPrefix, util.ToScreamingSnakeCase(fe.Field()), msgForTag(fe)))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ". "))
	}
	return fmt.Errorf("invalid configuration: %w", err)
}
