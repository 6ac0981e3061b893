package apiclient

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samvad-hq/ninja-client/pkg/replay"
)

const (
	DefaultTimeout         = 300 * time.Second
	DefaultReplayStorePath = "out/apiclient.vcr"
)

// Config holds the immutable settings of a Client.
type Config struct {
	BaseURL  string
	League   string
	Language string

	// Verbose emits request/response details to the client's Logger.
	Verbose bool
	Timeout time.Duration

	// RaiseErrors makes Execute return failures as errors instead of ErrorResponse values.
	RaiseErrors bool

	UseReplayMode    bool
	ReplayStorePath  string
	ReplayStoreType  string
	ReplayRecordMode replay.Mode
}

func (c Config) normalize() (Config, error) {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL == "" {
		return c, errors.New("base url is required")
	}
	if c.Timeout < 0 {
		return c, fmt.Errorf("invalid timeout %s", c.Timeout)
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}

	if c.UseReplayMode {
		if strings.TrimSpace(c.ReplayStorePath) == "" {
			c.ReplayStorePath = DefaultReplayStorePath
		}
		mode, err := replay.ParseMode(string(c.ReplayRecordMode))
		if err != nil {
			return c, err
		}
		c.ReplayRecordMode = mode
		if err := replay.ValidateStore(c.ReplayStoreType, c.ReplayStorePath); err != nil {
			return c, err
		}
	}
	return c, nil
}
