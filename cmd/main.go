package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"pizza-orders/internal/config"
	"pizza-orders/internal/ledger"
	"pizza-orders/internal/logger"
	"pizza-orders/internal/models"
	"pizza-orders/internal/prompt"
	"pizza-orders/internal/services/order"
)

const serviceName = "pizza-orders"

func main() {
	app := &cli.App{
		Name:  serviceName,
		Usage: "take pizza orders at the counter or over the phone",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the menu and order rules file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides config)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "append structured logs to this file instead of stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logger.New(serviceName, logOut, level)
	requestID := logger.GenerateRequestID()

	catalog := models.NewCatalog(cfg.MenuItems())
	log.Info("config_loaded", requestID, "Configuration loaded")

	input := prompt.NewValidator(os.Stdin, os.Stdout)
	builder := order.NewBuilder(order.Settings{
		Catalog:        catalog,
		MaxItems:       cfg.Order.MaxItems,
		DeliveryCharge: cfg.Order.DeliveryCharge,
	}, input, log, requestID)
	session := order.NewSession(builder, ledger.New(), input, log, requestID)

	if err := session.Run(c.Context); err != nil {
		return fmt.Errorf("order session failed: %w", err)
	}
	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")

	var (
		cfg *config.Config
		err error
	)
	if c.IsSet("config") {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}
	return cfg, nil
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, func() { file.Close() }, nil
}
