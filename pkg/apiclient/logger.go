package apiclient

import "github.com/samvad-hq/ninja-client/internal/logger"

// Logger is the diagnostic sink used for verbose request tracing.
type Logger = logger.Logger
