package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"pizza-orders/internal/logger"
	"pizza-orders/internal/models"
)

// MaxItemsLimit is the largest per-order item count a single-digit prompt can take.
const MaxItemsLimit = 9

// MenuLimit is the largest menu a two-digit selection can address.
const MenuLimit = 99

// Config holds all configuration for the order manager
type Config struct {
	Order OrderConfig      `yaml:"order"`
	Menu  []MenuItemConfig `yaml:"menu"`
	Log   LogConfig        `yaml:"log"`
}

// OrderConfig holds the business rules applied to every order
type OrderConfig struct {
	MaxItems       int             `yaml:"max_items" envconfig:"PIZZA_MAX_ITEMS"`
	DeliveryCharge decimal.Decimal `yaml:"delivery_charge" envconfig:"PIZZA_DELIVERY_CHARGE"`
}

// MenuItemConfig is one menu entry
type MenuItemConfig struct {
	Name  string          `yaml:"name"`
	Price decimal.Decimal `yaml:"price"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `yaml:"level" envconfig:"PIZZA_LOG_LEVEL"`
	File  string `yaml:"file" envconfig:"PIZZA_LOG_FILE"`
}

// ValidationError reports a configuration value that cannot be used
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Default returns the built-in menu and rules.
func Default() *Config {
	item := func(name, price string) MenuItemConfig {
		return MenuItemConfig{Name: name, Price: decimal.RequireFromString(price)}
	}
	return &Config{
		Order: OrderConfig{
			MaxItems:       5,
			DeliveryCharge: decimal.RequireFromString("3.00"),
		},
		Menu: []MenuItemConfig{
			item("Hawaiian", "8.5"),
			item("Meat Lovers", "8.5"),
			item("Pepperoni", "8.5"),
			item("Ham & Cheese", "8.5"),
			item("Classic Cheese", "8.5"),
			item("Veg Hot 'n' Spicy", "8.5"),
			item("Beef & Onion", "8.5"),
			item("Seafood Deluxe", "13.5"),
			item("Summer Shrimp", "13.5"),
			item("BBQ Bacon & Mushroom", "13.5"),
			item("BBQ Hawaiian", "13.5"),
			item("Italiano", "13.5"),
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Load reads configuration from a YAML file on top of the defaults, then
// applies environment overrides and validates the result.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	return finish(cfg)
}

// LoadOptional behaves like Load but falls back to the defaults when the file
// does not exist.
func LoadOptional(filename string) (*Config, error) {
	cfg, err := Load(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return finish(Default())
	}
	return cfg, err
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv reads the PIZZA_* overrides named in the struct tags.
func (c *Config) applyEnv() error {
	if err := envconfig.Process("", &c.Order); err != nil {
		return fmt.Errorf("failed to read order overrides from environment: %w", err)
	}
	if err := envconfig.Process("", &c.Log); err != nil {
		return fmt.Errorf("failed to read log overrides from environment: %w", err)
	}
	return nil
}

// Validate checks the menu and order rules
func (c *Config) Validate() error {
	if c.Order.MaxItems < 1 || c.Order.MaxItems > MaxItemsLimit {
		return ValidationError{
			Field:   "order.max_items",
			Message: fmt.Sprintf("must be between 1 and %d", MaxItemsLimit),
		}
	}

	if c.Order.DeliveryCharge.IsNegative() {
		return ValidationError{
			Field:   "order.delivery_charge",
			Message: "must not be negative",
		}
	}

	if len(c.Menu) == 0 {
		return ValidationError{
			Field:   "menu",
			Message: "menu cannot be empty",
		}
	}
	if len(c.Menu) > MenuLimit {
		return ValidationError{
			Field:   "menu",
			Message: fmt.Sprintf("menu cannot have more than %d items", MenuLimit),
		}
	}

	seen := make(map[string]bool, len(c.Menu))
	for i, item := range c.Menu {
		field := fmt.Sprintf("menu[%d]", i)
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return ValidationError{Field: field + ".name", Message: "item name is required"}
		}
		if seen[name] {
			return ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate item %q", name)}
		}
		seen[name] = true
		if !item.Price.IsPositive() {
			return ValidationError{Field: field + ".price", Message: "item price must be greater than 0"}
		}
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return ValidationError{
			Field:   "log.level",
			Message: "must be one of debug, info, warn, error",
		}
	}

	return nil
}

// MenuItems converts the configured menu into catalog entries
func (c *Config) MenuItems() []models.MenuItem {
	items := make([]models.MenuItem, 0, len(c.Menu))
	for _, item := range c.Menu {
		items = append(items, models.MenuItem{
			Name:  strings.TrimSpace(item.Name),
			Price: item.Price,
		})
	}
	return items
}
