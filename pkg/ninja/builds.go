package ninja

import (
	"context"
	"strings"

	"github.com/samvad-hq/ninja-client/pkg/apiclient"
)

// BuildsAPI calls the build overview and character endpoints.
type BuildsAPI struct {
	client *apiclient.Client
}

// NewBuildsAPI builds a BuildsAPI with its own core client.
func NewBuildsAPI(cfg apiclient.Config, opts ...apiclient.Option) (*BuildsAPI, error) {
	client, err := newCoreClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &BuildsAPI{client: client}, nil
}

// NewBuildsAPIWithClient builds a BuildsAPI sharing an existing core client.
func NewBuildsAPIWithClient(client *apiclient.Client) *BuildsAPI {
	return &BuildsAPI{client: client}
}

// Client returns the underlying core client.
func (b *BuildsAPI) Client() *apiclient.Client { return b.client }

// Close releases the underlying core client.
func (b *BuildsAPI) Close() error { return b.client.Close() }

// BuildsParams are the query parameters of the build overview endpoint.
// Overview is the lowercased league name.
type BuildsParams struct {
	Type        LadderType
	Overview    string
	Language    string
	TimeMachine TimeMachine
}

// Values renders the parameters as they go on the wire; the endpoint expects
// a capitalised Language key and an explicit, possibly empty, timemachine.
func (p BuildsParams) Values() map[string]string {
	return map[string]string{
		"type":        string(p.Type),
		"overview":    p.Overview,
		"Language":    p.Language,
		"timemachine": string(p.TimeMachine),
	}
}

// CharacterParams are the query parameters of the character endpoint.
type CharacterParams struct {
	BuildsParams
	Account string
	Name    string
}

// Values renders the parameters as they go on the wire.
func (p CharacterParams) Values() map[string]string {
	v := p.BuildsParams.Values()
	v["account"] = p.Account
	v["name"] = p.Name
	return v
}

func (b *BuildsAPI) buildsParams(typ LadderType, tm TimeMachine) BuildsParams {
	cfg := b.client.Config()
	return BuildsParams{
		Type:        typ,
		Overview:    strings.ToLower(cfg.League),
		Language:    cfg.Language,
		TimeMachine: tm,
	}
}

// BuildOverviewRequest builds the request for a ladder's build overview.
func (b *BuildsAPI) BuildOverviewRequest(typ LadderType, tm TimeMachine) apiclient.RequestSpec[BuildsResponse] {
	return apiclient.BuildGet[BuildsResponse](b.client, PathBuildOverview, b.buildsParams(typ, tm).Values())
}

// CharacterRequest builds the request for one character. The ladder type does
// not change the answer, so the experience ladder is always used.
func (b *BuildsAPI) CharacterRequest(account, name string, tm TimeMachine) apiclient.RequestSpec[CharacterResponse] {
	params := CharacterParams{
		BuildsParams: b.buildsParams(ExperienceLadder, tm),
		Account:      account,
		Name:         name,
	}
	return apiclient.BuildGet[CharacterResponse](b.client, PathCharacter, params.Values())
}

// BuildOverview fetches the build overview of a ladder.
func (b *BuildsAPI) BuildOverview(ctx context.Context, typ LadderType, tm TimeMachine) (apiclient.Result[BuildsResponse], error) {
	if err := tm.Validate(); err != nil {
		return apiclient.Fail[BuildsResponse](b.client, err)
	}
	return apiclient.Execute(ctx, b.client, b.BuildOverviewRequest(typ, tm))
}

// GetExperienceLadder fetches the build overview of the experience ladder.
func (b *BuildsAPI) GetExperienceLadder(ctx context.Context, tm TimeMachine) (apiclient.Result[BuildsResponse], error) {
	return b.BuildOverview(ctx, ExperienceLadder, tm)
}

// GetDelveLadder fetches the build overview of the solo delve ladder.
func (b *BuildsAPI) GetDelveLadder(ctx context.Context, tm TimeMachine) (apiclient.Result[BuildsResponse], error) {
	return b.BuildOverview(ctx, DelveSoloLadder, tm)
}

// GetCharacter fetches one character's equipment, skills and passives.
func (b *BuildsAPI) GetCharacter(ctx context.Context, account, name string, tm TimeMachine) (apiclient.Result[CharacterResponse], error) {
	if err := tm.Validate(); err != nil {
		return apiclient.Fail[CharacterResponse](b.client, err)
	}
	return apiclient.Execute(ctx, b.client, b.CharacterRequest(account, name, tm))
}
