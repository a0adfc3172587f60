package midi

import (
	"os"

	"github.com/leandrodaf/midiseq/internal/logger"
	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// applyDefaultOptions sets default values for ClientOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify ClientOptions.
//
// Returns:
//   - contracts.ClientOptions: A structure containing the finalized client options with defaults applied.
//   - error: An error if a name cannot be encoded for the driver.
func applyDefaultOptions(opts ...contracts.Option) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{
		ClientName:   contracts.DefaultClientName,
		PortName:     contracts.DefaultPortName,
		Capabilities: contracts.DefaultCapabilities,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}

	// An explicit level wins over the environment
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
		if env := os.Getenv(contracts.LogLevelEnv); env != "" {
			level, err := contracts.ParseLogLevel(env)
			if err != nil {
				options.Logger.Warn("Ignoring invalid log level from environment",
					options.Logger.Field().String("variable", contracts.LogLevelEnv),
					options.Logger.Field().Error("error", err))
			} else {
				options.LogLevel = level
			}
		}
	}
	options.Logger.SetLevel(options.LogLevel)

	if err := options.Validate(); err != nil {
		return contracts.ClientOptions{}, err
	}
	return *options, nil
}
