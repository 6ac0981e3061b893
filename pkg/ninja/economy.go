package ninja

import (
	"context"

	"github.com/samvad-hq/ninja-client/pkg/apiclient"
)

// EconomyAPI calls the currency and item overview endpoints.
type EconomyAPI struct {
	client *apiclient.Client
}

// NewEconomyAPI builds an EconomyAPI with its own core client.
func NewEconomyAPI(cfg apiclient.Config, opts ...apiclient.Option) (*EconomyAPI, error) {
	client, err := newCoreClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &EconomyAPI{client: client}, nil
}

// NewEconomyAPIWithClient builds an EconomyAPI sharing an existing core client.
func NewEconomyAPIWithClient(client *apiclient.Client) *EconomyAPI {
	return &EconomyAPI{client: client}
}

// Client returns the underlying core client.
func (e *EconomyAPI) Client() *apiclient.Client { return e.client }

// Close releases the underlying core client.
func (e *EconomyAPI) Close() error { return e.client.Close() }

// EconomyParams are the query parameters of both overview endpoints.
type EconomyParams struct {
	Type     string
	League   string
	Language string
}

// Values renders the parameters as they go on the wire.
func (p EconomyParams) Values() map[string]string {
	return map[string]string{
		"type":     p.Type,
		"league":   p.League,
		"language": p.Language,
	}
}

// CurrencyOverviewRequest builds the request for a currency listing.
func (e *EconomyAPI) CurrencyOverviewRequest(typ CurrencyOverviewType) apiclient.RequestSpec[CurrencyResponse] {
	cfg := e.client.Config()
	params := EconomyParams{Type: string(typ), League: cfg.League, Language: cfg.Language}
	return apiclient.BuildGet[CurrencyResponse](e.client, PathCurrencyOverview, params.Values())
}

// ItemOverviewRequest builds the request for an item listing.
func (e *EconomyAPI) ItemOverviewRequest(typ ItemOverviewType) apiclient.RequestSpec[ItemResponse] {
	cfg := e.client.Config()
	params := EconomyParams{Type: string(typ), League: cfg.League, Language: cfg.Language}
	return apiclient.BuildGet[ItemResponse](e.client, PathItemOverview, params.Values())
}

// CurrencyOverview fetches a currency listing.
func (e *EconomyAPI) CurrencyOverview(ctx context.Context, typ CurrencyOverviewType) (apiclient.Result[CurrencyResponse], error) {
	return apiclient.Execute(ctx, e.client, e.CurrencyOverviewRequest(typ))
}

// ItemOverview fetches an item listing.
func (e *EconomyAPI) ItemOverview(ctx context.Context, typ ItemOverviewType) (apiclient.Result[ItemResponse], error) {
	return apiclient.Execute(ctx, e.client, e.ItemOverviewRequest(typ))
}

func (e *EconomyAPI) GetCurrency(ctx context.Context) (apiclient.Result[CurrencyResponse], error) {
	return e.CurrencyOverview(ctx, Currency)
}

func (e *EconomyAPI) GetFragments(ctx context.Context) (apiclient.Result[CurrencyResponse], error) {
	return e.CurrencyOverview(ctx, Fragment)
}

func (e *EconomyAPI) GetDivinationCards(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, DivinationCard)
}

func (e *EconomyAPI) GetArtifacts(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Artifact)
}

func (e *EconomyAPI) GetOils(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Oil)
}

func (e *EconomyAPI) GetIncubators(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Incubator)
}

func (e *EconomyAPI) GetUniqueWeapons(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, UniqueWeapon)
}

func (e *EconomyAPI) GetUniqueArmours(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, UniqueArmour)
}

func (e *EconomyAPI) GetUniqueAccessories(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, UniqueAccessory)
}

func (e *EconomyAPI) GetUniqueFlasks(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, UniqueFlask)
}

func (e *EconomyAPI) GetUniqueJewels(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, UniqueJewel)
}

func (e *EconomyAPI) GetSkillGems(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, SkillGem)
}

func (e *EconomyAPI) GetClusterJewels(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, ClusterJewel)
}

func (e *EconomyAPI) GetMaps(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Map)
}

func (e *EconomyAPI) GetBlightedMaps(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, BlightedMap)
}

func (e *EconomyAPI) GetBlightRavagedMaps(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, BlightRavagedMap)
}

func (e *EconomyAPI) GetScourgedMaps(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, ScourgedMap)
}

func (e *EconomyAPI) GetUniqueMaps(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, UniqueMap)
}

func (e *EconomyAPI) GetDeliriumOrbs(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, DeliriumOrb)
}

func (e *EconomyAPI) GetInvitations(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Invitation)
}

func (e *EconomyAPI) GetScarabs(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Scarab)
}

func (e *EconomyAPI) GetBaseTypes(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, BaseType)
}

func (e *EconomyAPI) GetFossils(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Fossil)
}

func (e *EconomyAPI) GetResonators(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Resonator)
}

func (e *EconomyAPI) GetHelmetEnchants(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, HelmetEnchant)
}

func (e *EconomyAPI) GetBeasts(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Beast)
}

func (e *EconomyAPI) GetEssences(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Essence)
}

func (e *EconomyAPI) GetVials(ctx context.Context) (apiclient.Result[ItemResponse], error) {
	return e.ItemOverview(ctx, Vial)
}
