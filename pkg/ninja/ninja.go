// Package ninja is a typed client for the poe.ninja economy and builds API.
//
// Each API method builds an apiclient.RequestSpec and hands it to
// apiclient.Execute, so results follow the core client's error policy.
package ninja

import (
	"fmt"
	"strings"

	"github.com/samvad-hq/ninja-client/pkg/apiclient"
)

const (
	DefaultBaseURL  = "https://poe.ninja/api/data"
	DefaultLeague   = "Sanctum"
	DefaultLanguage = "en"
)

const (
	PathCurrencyOverview = "/currencyoverview"
	PathItemOverview     = "/itemoverview"
	PathBuildOverview    = "/0/getbuildoverview"
	PathCharacter        = "/0/getcharacter"
)

// DefaultConfig returns the settings used when talking to poe.ninja directly.
func DefaultConfig() apiclient.Config {
	return apiclient.Config{
		BaseURL:  DefaultBaseURL,
		League:   DefaultLeague,
		Language: DefaultLanguage,
		Timeout:  apiclient.DefaultTimeout,
	}
}

// CurrencyOverviewType selects a /currencyoverview listing.
type CurrencyOverviewType string

const (
	Currency CurrencyOverviewType = "Currency"
	Fragment CurrencyOverviewType = "Fragment"
)

// ItemOverviewType selects an /itemoverview listing.
type ItemOverviewType string

const (
	DivinationCard   ItemOverviewType = "DivinationCard"
	Artifact         ItemOverviewType = "Artifact"
	Oil              ItemOverviewType = "Oil"
	Incubator        ItemOverviewType = "Incubator"
	UniqueWeapon     ItemOverviewType = "UniqueWeapon"
	UniqueArmour     ItemOverviewType = "UniqueArmour"
	UniqueAccessory  ItemOverviewType = "UniqueAccessory"
	UniqueFlask      ItemOverviewType = "UniqueFlask"
	UniqueJewel      ItemOverviewType = "UniqueJewel"
	SkillGem         ItemOverviewType = "SkillGem"
	ClusterJewel     ItemOverviewType = "ClusterJewel"
	Map              ItemOverviewType = "Map"
	BlightedMap      ItemOverviewType = "BlightedMap"
	BlightRavagedMap ItemOverviewType = "BlightRavagedMap"
	ScourgedMap      ItemOverviewType = "ScourgedMap"
	UniqueMap        ItemOverviewType = "UniqueMap"
	DeliriumOrb      ItemOverviewType = "DeliriumOrb"
	Invitation       ItemOverviewType = "Invitation"
	Scarab           ItemOverviewType = "Scarab"
	BaseType         ItemOverviewType = "BaseType"
	Fossil           ItemOverviewType = "Fossil"
	Resonator        ItemOverviewType = "Resonator"
	HelmetEnchant    ItemOverviewType = "HelmetEnchant"
	Beast            ItemOverviewType = "Beast"
	Essence          ItemOverviewType = "Essence"
	Vial             ItemOverviewType = "Vial"
)

// CurrencyOverviewTypes lists every currency listing.
var CurrencyOverviewTypes = []CurrencyOverviewType{Currency, Fragment}

// ItemOverviewTypes lists every item listing.
var ItemOverviewTypes = []ItemOverviewType{
	DivinationCard, Artifact, Oil, Incubator, UniqueWeapon, UniqueArmour, UniqueAccessory,
	UniqueFlask, UniqueJewel, SkillGem, ClusterJewel, Map, BlightedMap, BlightRavagedMap,
	ScourgedMap, UniqueMap, DeliriumOrb, Invitation, Scarab, BaseType, Fossil, Resonator,
	HelmetEnchant, Beast, Essence, Vial,
}

// ParseCurrencyOverviewType matches s case-insensitively against the known listings.
func ParseCurrencyOverviewType(s string) (CurrencyOverviewType, error) {
	for _, t := range CurrencyOverviewTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown currency overview type %q", s)
}

// ParseItemOverviewType matches s case-insensitively against the known listings.
func ParseItemOverviewType(s string) (ItemOverviewType, error) {
	for _, t := range ItemOverviewTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown item overview type %q", s)
}

// LadderType selects the ladder a build overview or character comes from.
type LadderType string

const (
	ExperienceLadder LadderType = "exp"
	DelveSoloLadder  LadderType = "depthsolo"
)

// TimeMachine selects a historical snapshot of the builds ladder. The zero
// value means the current ladder.
type TimeMachine string

const Now TimeMachine = ""

const (
	maxTimeMachineDays  = 6
	maxTimeMachineWeeks = 16
)

// DaysAgo returns the snapshot taken n days into the league (1–6).
func DaysAgo(n int) TimeMachine { return TimeMachine(fmt.Sprintf("day-%d", n)) }

// WeeksAgo returns the snapshot taken n weeks into the league (1–16).
func WeeksAgo(n int) TimeMachine { return TimeMachine(fmt.Sprintf("week-%d", n)) }

// Validate reports whether tm names a snapshot poe.ninja serves.
func (tm TimeMachine) Validate() error {
	if tm == Now {
		return nil
	}
	var n int
	if _, err := fmt.Sscanf(string(tm), "day-%d", &n); err == nil && n >= 1 && n <= maxTimeMachineDays && tm == DaysAgo(n) {
		return nil
	}
	if _, err := fmt.Sscanf(string(tm), "week-%d", &n); err == nil && n >= 1 && n <= maxTimeMachineWeeks && tm == WeeksAgo(n) {
		return nil
	}
	return fmt.Errorf("invalid time machine value %q", string(tm))
}

// newCoreClient applies package defaults to cfg and builds the shared core client.
func newCoreClient(cfg apiclient.Config, opts ...apiclient.Option) (*apiclient.Client, error) {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.League == "" {
		cfg.League = def.League
	}
	if cfg.Language == "" {
		cfg.Language = def.Language
	}
	client, err := apiclient.NewClient(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}
	return client, nil
}
