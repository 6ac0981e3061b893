package app

import (
	"fmt"

	"github.com/samvad-hq/ninja-client/internal/config"
	"github.com/samvad-hq/ninja-client/internal/logger"
	"github.com/samvad-hq/ninja-client/pkg/apiclient"
	"github.com/samvad-hq/ninja-client/pkg/ninja"
	"github.com/samvad-hq/ninja-client/pkg/replay"
)

// Clients bundles the domain APIs sharing one core client.
type Clients struct {
	Core    *apiclient.Client
	Economy *ninja.EconomyAPI
	Builds  *ninja.BuildsAPI
}

// ClientConfig maps loaded configuration onto the core client settings.
func ClientConfig(cfg *config.Config) (apiclient.Config, error) {
	if cfg == nil {
		return apiclient.Config{}, fmt.Errorf("config must not be nil")
	}

	mode, err := replay.ParseMode(cfg.ReplayRecordMode)
	if err != nil {
		return apiclient.Config{}, err
	}

	out := ninja.DefaultConfig()
	out.BaseURL = cfg.BaseURL
	out.League = cfg.League
	out.Language = cfg.Language
	out.Verbose = cfg.Verbose
	out.Timeout = cfg.Timeout
	out.RaiseErrors = cfg.RaiseErrors
	out.UseReplayMode = cfg.UseReplayMode
	out.ReplayStorePath = cfg.ReplayStorePath
	out.ReplayStoreType = cfg.ReplayStoreType
	out.ReplayRecordMode = mode
	return out, nil
}

// NewClients builds the shared core client and the domain APIs on top of it.
func NewClients(cfg *config.Config, log logger.Logger, opts ...apiclient.Option) (*Clients, error) {
	clientCfg, err := ClientConfig(cfg)
	if err != nil {
		return nil, err
	}

	opts = append([]apiclient.Option{apiclient.WithLogger(logger.Ensure(log))}, opts...)
	core, err := apiclient.NewClient(clientCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	return &Clients{
		Core:    core,
		Economy: ninja.NewEconomyAPIWithClient(core),
		Builds:  ninja.NewBuildsAPIWithClient(core),
	}, nil
}

// Close releases the shared session.
func (c *Clients) Close() error {
	if c == nil || c.Core == nil {
		return nil
	}
	return c.Core.Close()
}
