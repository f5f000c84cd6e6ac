package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration for the application.
// Tags used:
// - mapstructure: environment key
// - default: value used when the key is missing
// - required: if "true", loading fails when the key is missing
type Config struct {
	Environment string `mapstructure:"APP_ENV" default:"development"`
	LogLevel    string `mapstructure:"LOG_LEVEL" default:"info"`

	HTTPPort        int           `mapstructure:"HTTP_PORT" default:"8080"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" default:"10s"`

	Database  DatabaseConfig  `mapstructure:",squash"`
	Redis     RedisConfig     `mapstructure:",squash"`
	Warehouse WarehouseConfig `mapstructure:",squash"`
	Carriers  CarriersConfig  `mapstructure:",squash"`
	Jobs      JobsConfig      `mapstructure:",squash"`
}

// DatabaseConfig holds the postgres connection details.
type DatabaseConfig struct {
	Host     string `mapstructure:"DB_HOST" default:"localhost"`
	Port     int    `mapstructure:"DB_PORT" default:"5432"`
	User     string `mapstructure:"DB_USER" required:"true"`
	Password string `mapstructure:"DB_PASSWORD"`
	Name     string `mapstructure:"DB_NAME" required:"true"`
	SslMode  string `mapstructure:"DB_SSLMODE" default:"disable"`
}

// DSN renders the connection string understood by the postgres driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

// RedisConfig configures the shipping notification gate.
type RedisConfig struct {
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// NotificationTTL is how long a sent shipping notification is remembered.
	NotificationTTL time.Duration `mapstructure:"NOTIFICATION_TTL" default:"720h"`
}

// WarehouseConfig is the sender address printed on every label.
type WarehouseConfig struct {
	Name       string `mapstructure:"WAREHOUSE_NAME" required:"true"`
	Street     string `mapstructure:"WAREHOUSE_STREET" required:"true"`
	City       string `mapstructure:"WAREHOUSE_CITY" required:"true"`
	PostalCode string `mapstructure:"WAREHOUSE_POSTAL_CODE" required:"true"`
	Country    string `mapstructure:"WAREHOUSE_COUNTRY" required:"true"`
	Phone      string `mapstructure:"WAREHOUSE_PHONE"`
}

// Address validates the warehouse fields as a kernel.Address.
func (c WarehouseConfig) Address() (kernel.Address, error) {
	return kernel.NewAddress(c.Name, c.Street, c.City, c.PostalCode, c.Country, c.Phone)
}

// CarriersConfig holds the per-carrier settings.
type CarriersConfig struct {
	PostalLabelBaseURL      string `mapstructure:"POSTAL_LABEL_BASE_URL" default:"https://labels.postal.local"`
	ExpressLabelBaseURL     string `mapstructure:"EXPRESS_LABEL_BASE_URL" default:"https://labels.express.local"`
	PickupPointLabelBaseURL string `mapstructure:"PICKUP_POINT_LABEL_BASE_URL" default:"https://labels.pickup.local"`

	// The courier API falls back to simulated labels while base URL or key is empty.
	CourierAPIBaseURL      string        `mapstructure:"COURIER_API_BASE_URL"`
	CourierAPIKey          string        `mapstructure:"COURIER_API_KEY"`
	CourierAPILabelBaseURL string        `mapstructure:"COURIER_API_LABEL_BASE_URL" default:"https://labels.courier.local"`
	CourierAPITimeout      time.Duration `mapstructure:"COURIER_API_TIMEOUT" default:"10s"`
	CourierAPIRate         float64       `mapstructure:"COURIER_API_RATE" default:"5"`
	CourierAPIBurst        int           `mapstructure:"COURIER_API_BURST" default:"10"`

	// ProbeTimeout bounds each carrier call while the router probes for a tracking number.
	ProbeTimeout time.Duration `mapstructure:"CARRIER_PROBE_TIMEOUT" default:"5s"`
	LabelIssuer  string        `mapstructure:"LABEL_ISSUER" default:"Fulfillment"`
}

// JobsConfig holds six-field cron specs, seconds first.
type JobsConfig struct {
	TrackingSyncSchedule        string `mapstructure:"TRACKING_SYNC_SCHEDULE" default:"0 */15 * * * *"`
	DelayedOrdersReportSchedule string `mapstructure:"DELAYED_ORDERS_REPORT_SCHEDULE" default:"0 0 8 * * *"`
}

// LoadConfig reads the optional env files into the process environment and decodes the
// environment into Config. Variables already set in the environment take precedence over
// the files.
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading env file %s: %w", file, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	var config Config

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged key to the environment and registers its default.
func processTags(v *viper.Viper, config any) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if isSection(field) {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks that fields marked as required have non-zero values.
func validateRequired(config any) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	var missing []error
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if isSection(field) {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				missing = append(missing, err)
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			missing = append(missing, fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure")))
		}
	}
	return errors.Join(missing...)
}

// isSection reports whether field is a nested config struct. time.Duration is an int64
// and never matches.
func isSection(field reflect.StructField) bool {
	return field.Type.Kind() == reflect.Struct
}
