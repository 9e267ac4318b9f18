package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/en16931/cii2ubl/binding"
	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/config"
	"github.com/en16931/cii2ubl/diag"
	"github.com/en16931/cii2ubl/mapper"
	"github.com/en16931/cii2ubl/ubl"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	maxParamLength = 1024 // 1KB

	headerConversionID = "X-Conversion-ID"
)

type appConfig struct {
	Port       *int    `kong:"short='p',help='Port to listen on'"`
	Config     string  `kong:"short='c',help='YAML configuration file with service and conversion settings'"`
	LogLevel   *string `kong:"short='l',help='Log level (debug, info, warn, error)'"`
	UBLVersion *string `kong:"name='ubl-version',short='u',help='Default target UBL version (2.1, 2.2, 2.3, 2.4)'"`
	Mode       *string `kong:"name='mode',short='m',help='Default creation mode (automatic, invoice, creditnote)'"`
}

// conversionResponse is returned when a conversion recorded errors
type conversionResponse struct {
	ID          string       `json:"id"`
	Kind        string       `json:"kind,omitempty"`
	Version     string       `json:"version"`
	Diagnostics []diag.Entry `json:"diagnostics"`
	Document    string       `json:"document,omitempty"`
}

// bindingsResponse lists the business term binding table
type bindingsResponse struct {
	Version string            `json:"en16931"`
	Terms   []binding.Binding `json:"terms"`
}

func parseConfig() *appConfig {
	cfg := &appConfig{}

	desc := config.Description
	desc += " [" + config.Version + "]"

	ctx := kong.Parse(cfg,
		kong.Name("cii2ubl-server"),
		kong.Description(desc),
		kong.UsageOnError(),
	)
	if ctx.Error != nil {
		fmt.Fprintln(os.Stderr, ctx.Error)
		os.Exit(1)
	}
	return cfg
}

func setupLogger(level string) {
	// Parse log level
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Error().Err(err).Str("level", level).Msg("Invalid log level, defaulting to info")
		lvl = zerolog.InfoLevel
	}

	// Configure zerolog
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// setupFiberLogger configures fiber's logger middleware to integrate with zerolog
func setupFiberLogger() fiber.Handler {
	// Only enable HTTP request logging if log level is debug or info
	if zerolog.GlobalLevel() > zerolog.InfoLevel {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		// Determine log level based on status code
		logEvent := log.Info()
		if status >= 400 && status < 500 {
			logEvent = log.Warn()
		} else if status >= 500 {
			logEvent = log.Error()
		}

		logEvent.
			Int("status", status).
			Dur("latency", latency).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("ip", c.IP()).
			Str("conversion", string(c.Response().Header.Peek(headerConversionID))).
			Str("user_agent", c.Get("User-Agent")).
			Msg("HTTP request")

		return err
	}
}

func main() {
	// Parse command line flags
	cfg := parseConfig()

	yamlConfig, err := config.Load(cfg.Config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	finalPort := yamlConfig.Port
	finalLogLevel := yamlConfig.LogLevel

	// Use command line values if provided (they override config file)
	if cfg.Port != nil {
		finalPort = *cfg.Port
	}
	if cfg.LogLevel != nil {
		finalLogLevel = *cfg.LogLevel
	}
	if cfg.UBLVersion != nil {
		yamlConfig.Conversion.UBLVersion = *cfg.UBLVersion
	}
	if cfg.Mode != nil {
		yamlConfig.Conversion.Mode = config.Mode(*cfg.Mode)
	}

	setupLogger(finalLogLevel)

	// Reject unusable defaults before accepting requests
	if _, err := mapper.New(yamlConfig.Conversion); err != nil {
		log.Fatal().Err(err).Msg("Invalid conversion settings")
	}

	app := newApp(yamlConfig)

	// Start server
	go func() {
		log.Info().
			Int("port", finalPort).
			Str("version", yamlConfig.Conversion.UBLVersion).
			Str("mode", string(yamlConfig.Conversion.Mode)).
			Msg("Starting server")
		fmt.Printf("Starting server port=%d\n", finalPort)

		if err := app.Listen(fmt.Sprintf(":%d", finalPort)); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	log.Info().Msg("Shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

// newApp creates the fiber app with middleware and routes
func newApp(yamlConfig *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             yamlConfig.BodyLimit,
		ReadBufferSize:        64 * 1024, // 64KB - increase header size limit
		WriteBufferSize:       64 * 1024, // 64KB - increase response buffer size
	})

	app.Use(setupFiberLogger())
	setupRoutes(app, yamlConfig.Conversion)
	return app
}

func setupRoutes(app *fiber.App, defaults config.Conversion) {
	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Get("/bindings", handleBindings())
	app.Post("/convert", handleConvert(defaults))
}

func handleBindings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, err := binding.Default()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(bindingsResponse{Version: table.Version, Terms: table.Terms()})
	}
}

// extractParams reads the conversion settings of a request. Explicit
// version and mode parameters take precedence over the cfg parameter.
func extractParams(c *fiber.Ctx, defaults config.Conversion) (config.Conversion, error) {
	cfgRaw := c.Query("cfg", "")
	version := c.Query("version", "")
	mode := c.Query("mode", "")

	if err := validateInput(map[string]string{"cfg": cfgRaw, "version": version, "mode": mode}); err != nil {
		return config.Conversion{}, err
	}

	params, err := ParseCfgParam(cfgRaw, defaults)
	if err != nil {
		return config.Conversion{}, err
	}
	conv := params.Apply(defaults)

	if version != "" {
		conv.UBLVersion = version
	}
	if mode != "" {
		conv.Mode = config.Mode(mode)
	}
	return conv, nil
}

func handleConvert(defaults config.Conversion) fiber.Handler {
	return func(c *fiber.Ctx) error {
		conv, err := extractParams(c, defaults)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		converter, err := mapper.New(conv)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		src, err := cii.Parse(c.Body())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		id := uuid.NewString()
		c.Set(headerConversionID, id)

		errs := diag.NewCollector()
		doc := converter.Convert(src, errs)
		errs.Log(log.With().Str("conversion", id).Logger())

		resp := conversionResponse{
			ID:          id,
			Version:     converter.Version(),
			Diagnostics: errs.Entries(),
		}

		var data []byte
		if doc != nil {
			resp.Kind = doc.Kind().String()
			data, err = ubl.Marshal(doc)
			if err != nil {
				log.Error().Err(err).Str("conversion", id).Msg("Failed to marshal UBL document")
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
		}

		if !mapper.Success(doc, errs) {
			resp.Document = string(data)
			return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
		return c.Send(data)
	}
}

// validateInput checks parameter lengths and rejects markup characters
func validateInput(params map[string]string) error {
	for name, value := range params {
		if len(value) > maxParamLength {
			return fmt.Errorf("%s too long (max %d bytes)", name, maxParamLength)
		}
		if strings.ContainsAny(value, "<>{}[]\\") {
			return fmt.Errorf("%s contains invalid characters", name)
		}
	}
	return nil
}
