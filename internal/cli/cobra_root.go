package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"studyflow/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	config   *config.Config
	loader   *config.Loader
	newModel ModelFactory
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	return newRootCommand(DefaultModelFactory)
}

func newRootCommand(newModel ModelFactory) *RootCommand {
	root := &RootCommand{newModel: newModel}

	root.cmd = &cobra.Command{
		Use:   "studyflow",
		Short: "Student productivity backend with a natural-language command interpreter",
		Long: `StudyFlow is the backend of a student productivity application. It stores
tasks, notes, reminders, budget entries and study sessions per user and turns
free-text commands into records with the help of a generative model.

EXAMPLES:
  studyflow serve                                   # Run the HTTP API
  studyflow serve --port 8080 --log-format console  # Run on another port with readable logs
  studyflow interpret "remind me to call mom at 7pm" --timezone Asia/Kolkata
  studyflow config show --format yaml               # Print the effective configuration
  studyflow migrate                                 # Create or upgrade the database schema

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Config file:
    studyflow.{toml,yaml,json} in the working directory or $HOME/.studyflow, or --config

  Server:
    STUDYFLOW_SERVER_PORT (PORT)                    Listen port (default: 5000)
    STUDYFLOW_SERVER_FRONTEND_URL (FRONTEND_URL)    Allowed CORS origin (default: *)

  Database:
    STUDYFLOW_DATABASE_DRIVER                       sqlite or mongo (default: sqlite)
    STUDYFLOW_DATABASE_DIR                          SQLite directory (default: ~/.studyflow)
    STUDYFLOW_DATABASE_FILENAME                     SQLite filename (default: studyflow.db)
    STUDYFLOW_DATABASE_MONGO_URI (MONGODB_URI)      MongoDB connection string

  Identity:
    STUDYFLOW_AUTH_GOOGLE_CLIENT_ID (GOOGLE_CLIENT_ID)  OAuth client id for ID token checks
    STUDYFLOW_AUTH_DEV_TOKEN                        Fixed token resolving to the development user

  Model:
    STUDYFLOW_MODEL_API_KEY (GEMINI_API_KEY)        Gemini API key
    STUDYFLOW_MODEL_NAME                            Model name (default: gemini-1.5-flash)

  Logging:
    STUDYFLOW_LOG_LEVEL                             debug, info, warn or error (default: info)
    STUDYFLOW_LOG_FORMAT                            json or console (default: json)
    STUDYFLOW_DEBUG                                 Force debug logging when set

GETTING HELP:
  studyflow [command] --help                        # Get help for any specific command
  studyflow completion bash                         # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags(cmd.Flags())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (default: studyflow.{toml,yaml,json} in . or $HOME/.studyflow)")

	// Server configuration
	flags.Int("port", 0, "Listen port (overrides STUDYFLOW_SERVER_PORT)")

	// Database configuration
	flags.String("db-driver", "", "Database driver, sqlite or mongo (overrides STUDYFLOW_DATABASE_DRIVER)")
	flags.String("db-dir", "", "SQLite directory (overrides STUDYFLOW_DATABASE_DIR)")
	flags.String("db-filename", "", "SQLite filename (overrides STUDYFLOW_DATABASE_FILENAME)")
	flags.String("mongo-uri", "", "MongoDB connection string (overrides STUDYFLOW_DATABASE_MONGO_URI)")

	// Model configuration
	flags.String("model", "", "Generative model name (overrides STUDYFLOW_MODEL_NAME)")
	flags.Duration("model-timeout", 0, "Generative model call timeout (overrides STUDYFLOW_MODEL_TIMEOUT)")

	// Interpreter configuration
	flags.String("timezone", "", "Fallback IANA time zone for commands (overrides STUDYFLOW_INTERPRETER_TIMEZONE)")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides STUDYFLOW_LOG_LEVEL)")
	flags.String("log-format", "", "Log format, json or console (overrides STUDYFLOW_LOG_FORMAT)")

	// Application configuration
	flags.Bool("verbose", false, "Enable verbose output (overrides STUDYFLOW_APPLICATION_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newServeCommand(),
		r.newInterpretCommand(),
		r.newConfigCommand(),
		r.newMigrateCommand(),
	)
}

// getConfigFromFlags loads the configuration and applies the flags the user
// actually set
func (r *RootCommand) getConfigFromFlags(flags *pflag.FlagSet) error {
	configFile, _ := flags.GetString("config")

	overrides := &config.ConfigOverrides{
		DBDriver:   changedString(flags, "db-driver"),
		DBDir:      changedString(flags, "db-dir"),
		DBFilename: changedString(flags, "db-filename"),
		MongoURI:   changedString(flags, "mongo-uri"),
		ModelName:  changedString(flags, "model"),
		Timezone:   changedString(flags, "timezone"),
		LogLevel:   changedString(flags, "log-level"),
		LogFormat:  changedString(flags, "log-format"),
	}
	if flags.Changed("port") {
		port, _ := flags.GetInt("port")
		overrides.Port = &port
	}
	if flags.Changed("model-timeout") {
		timeout, _ := flags.GetDuration("model-timeout")
		overrides.ModelTimeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	r.loader = config.NewLoader(configFile)
	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	r.config = cfg
	return nil
}

func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	value, _ := flags.GetString(name)
	return &value
}

// commandTimeout bounds one-shot commands that talk to the store or the model
func (r *RootCommand) commandTimeout() time.Duration {
	if r.config != nil && r.config.Model.Timeout > 0 {
		return r.config.Model.Timeout + r.config.Database.QueryTimeout
	}
	return 60 * time.Second
}
