package ninja

import "encoding/json"

// SparkLine holds up to seven points of a price trend.
type SparkLine struct {
	Data        []*float64 `json:"data"`
	TotalChange float64    `json:"totalChange"`
}

type Language struct {
	Name         string          `json:"name"`
	Translations json.RawMessage `json:"translations,omitempty"`
}

type NamedObject struct {
	Name string `json:"name"`
}

// CurrencyLineTransaction is one side of a currency trade, valued in chaos orbs.
type CurrencyLineTransaction struct {
	ID                int     `json:"id"`
	LeagueID          int     `json:"league_id"`
	PayCurrencyID     int     `json:"pay_currency_id"`
	GetCurrencyID     int     `json:"get_currency_id"`
	SampleTimeUTC     string  `json:"sample_time_utc"`
	Count             int     `json:"count"`
	Value             float64 `json:"value"`
	DataPointCount    int     `json:"data_point_count"`
	IncludesSecondary bool    `json:"includes_secondary"`
	ListingCount      int     `json:"listing_count"`
}

type CurrencyLine struct {
	CurrencyTypeName              string                   `json:"currencyTypeName"`
	Pay                           *CurrencyLineTransaction `json:"pay,omitempty"`
	Receive                       *CurrencyLineTransaction `json:"receive,omitempty"`
	PaySparkLine                  SparkLine                `json:"paySparkLine"`
	ReceiveSparkLine              SparkLine                `json:"receiveSparkLine"`
	ChaosEquivalent               float64                  `json:"chaosEquivalent"`
	LowConfidencePaySparkLine     SparkLine                `json:"lowConfidencePaySparkLine"`
	LowConfidenceReceiveSparkLine SparkLine                `json:"lowConfidenceReceiveSparkLine"`
	DetailsID                     string                   `json:"detailsId"`
}

type CurrencyDetail struct {
	ID      int    `json:"id"`
	Icon    string `json:"icon"`
	Name    string `json:"name"`
	TradeID string `json:"tradeId"`
}

// CurrencyResponse is the body of /currencyoverview.
type CurrencyResponse struct {
	Lines           []CurrencyLine   `json:"lines"`
	CurrencyDetails []CurrencyDetail `json:"currencyDetails"`
	Language        Language         `json:"language"`
}

type ItemModifier struct {
	Text     string `json:"text"`
	Optional bool   `json:"optional"`
}

type ItemLine struct {
	ID                     int            `json:"id"`
	Name                   string         `json:"name"`
	Icon                   string         `json:"icon"`
	StackSize              int            `json:"stackSize"`
	ArtFilename            string         `json:"artFilename"`
	ItemClass              int            `json:"itemClass"`
	SparkLine              SparkLine      `json:"sparkline"`
	LowConfidenceSparkLine SparkLine      `json:"lowConfidenceSparkline"`
	ImplicitModifiers      []ItemModifier `json:"implicitModifiers"`
	ExplicitModifiers      []ItemModifier `json:"explicitModifiers"`
	FlavourText            string         `json:"flavourText"`
	ChaosValue             float64        `json:"chaosValue"`
	ExaltedValue           float64        `json:"exaltedValue"`
	DivineValue            float64        `json:"divineValue"`
	Count                  int            `json:"count"`
	DetailsID              string         `json:"detailsId"`
	ListingCount           int            `json:"listingCount"`
}

// ItemResponse is the body of /itemoverview.
type ItemResponse struct {
	Lines    []ItemLine `json:"lines"`
	Language Language   `json:"language"`
}

type DefensiveStats struct {
	Strength                int `json:"strength"`
	Dexterity               int `json:"dexterity"`
	Intelligence            int `json:"intelligence"`
	EnduranceCharges        int `json:"enduranceCharges"`
	FrenzyCharges           int `json:"frenzyCharges"`
	PowerCharges            int `json:"powerCharges"`
	ItemSetType             int `json:"itemSetType"`
	WeaponConfigurationType int `json:"weaponConfigurationType"`
	Life                    int `json:"life"`
	EnergyShield            int `json:"energyShield"`
	Mana                    int `json:"mana"`
	EvasionRating           int `json:"evasionRating"`
	Armour                  int `json:"armour"`
}

type ItemDataProperty struct {
	Name        string  `json:"name"`
	Values      [][]any `json:"values"`
	DisplayMode int     `json:"displayMode"`
}

type ItemDataHybrid struct {
	BaseTypeName string `json:"baseTypeName"`
	IsVaalGem    bool   `json:"isVaalGem"`
	SecDescrText string `json:"secDescrText"`
}

// Socket attr is D, S, I or G (dexterity, strength, intelligence, white);
// sColour is the matching G, R, B or W.
type Socket struct {
	Group   int    `json:"group"`
	Attr    string `json:"attr"`
	SColour string `json:"sColour"`
}

// ItemData covers plain, hybrid gem, socketed and equipped items; fields
// that do not apply to an item are left empty.
type ItemData struct {
	ID           string             `json:"id"`
	Identified   bool               `json:"identified"`
	Corrupted    bool               `json:"corrupted"`
	Fractured    bool               `json:"fractured"`
	Synthesized  bool               `json:"synthesized"`
	Name         string             `json:"name"`
	ILvl         int                `json:"ilvl"`
	Icon         string             `json:"icon"`
	W            int                `json:"w"`
	H            int                `json:"h"`
	X            int                `json:"x"`
	Y            int                `json:"y"`
	TypeLine     string             `json:"typeLine"`
	BaseType     string             `json:"baseType"`
	ExplicitMods []string           `json:"explicitMods,omitempty"`
	Properties   []ItemDataProperty `json:"properties,omitempty"`
	Requirements []ItemDataProperty `json:"requirements,omitempty"`
	League       string             `json:"league"`
	DescrText    string             `json:"descrText,omitempty"`
	FrameType    int                `json:"frameType"`
	Replica      bool               `json:"replica,omitempty"`

	Hybrid *ItemDataHybrid `json:"hybrid,omitempty"`

	Socket *int   `json:"socket,omitempty"`
	Colour string `json:"colour,omitempty"`

	InventoryID   string     `json:"inventoryId,omitempty"`
	ImplicitMods  []string   `json:"implicitMods,omitempty"`
	CraftedMods   []string   `json:"craftedMods,omitempty"`
	EnchantMods   []string   `json:"enchantMods,omitempty"`
	Sockets       []Socket   `json:"sockets,omitempty"`
	SocketedItems []ItemData `json:"socketedItems,omitempty"`
}

type Gem struct {
	Name    string `json:"name"`
	Level   int    `json:"level"`
	Quality int    `json:"quality"`
}

type GemItem struct {
	Gem
	ItemData *ItemData `json:"itemData,omitempty"`
}

// SkillDps damage types are percentages in the order phys, lightning, cold,
// fire, chaos; damage is dps followed by the same split.
type SkillDps struct {
	Name           string  `json:"name"`
	Dps            float64 `json:"dps"`
	DotDps         float64 `json:"dotDps"`
	DamageTypes    []int   `json:"damageTypes"`
	DotDamageTypes []int   `json:"dotDamageTypes"`
	Damage         []int   `json:"damage"`
}

type Skill struct {
	Gem         GemItem    `json:"gem"`
	SupportGems []GemItem  `json:"supportGems"`
	ItemSlot    int        `json:"itemSlot"`
	AllGems     []GemItem  `json:"allGems"`
	Dps         []SkillDps `json:"dps"`
}

type CharacterItem struct {
	ItemData  ItemData `json:"itemData"`
	ItemSlot  int      `json:"itemSlot"`
	ItemClass int      `json:"itemClass"`
}

type Keystone struct {
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Stats []string `json:"stats"`
}

type ItemProvidedGem struct {
	Slot int   `json:"slot"`
	Gems []Gem `json:"gems"`
}

// CharacterResponse is the body of /0/getcharacter.
type CharacterResponse struct {
	Account              string            `json:"account"`
	Name                 string            `json:"name"`
	League               string            `json:"league"`
	DefensiveStats       DefensiveStats    `json:"defensiveStats"`
	Skills               []Skill           `json:"skills"`
	Level                int               `json:"level"`
	Class                string            `json:"class"`
	PathOfBuildingExport string            `json:"pathOfBuildingExport"`
	Items                []CharacterItem   `json:"items"`
	PassiveTreeURL       string            `json:"passiveTreeUrl"`
	KeyStones            []Keystone        `json:"keyStones"`
	Flasks               []CharacterItem   `json:"flasks"`
	Jewels               []CharacterItem   `json:"jewels"`
	PassiveSelection     []int             `json:"passiveSelection"`
	LastSeenUTC          string            `json:"lastSeenUtc"`
	UpdatedUTC           string            `json:"updatedUtc"`
	LastCheckedUTC       string            `json:"lastCheckedUtc"`
	Status               int               `json:"status"`
	Language             Language          `json:"language"`
	ItemProvidedGems     []ItemProvidedGem `json:"itemProvidedGems"`
	Masteries            []NamedObject     `json:"masteries"`
	BaseClass            int               `json:"baseClass"`
	AscendancyClass      int               `json:"ascendancyClass"`
}

type BuildsUniqueItem struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type BuildsSkill struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	DpsName string `json:"dpsName,omitempty"`
}

type BuildsPassiveNode struct {
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	IsKeystone bool   `json:"isKeystone"`
	Type       string `json:"type"`
}

// SkillDetailSupportGems indexes support gem usage. Dictionary maps a gem
// name to its position in Names.
type SkillDetailSupportGems struct {
	Names      []NamedObject    `json:"names"`
	Use        map[string][]int `json:"use"`
	Dictionary map[string]int   `json:"dictionary"`
}

// BuildsSkillDetail Dps is keyed by user id.
type BuildsSkillDetail struct {
	Name        string                 `json:"name"`
	SupportGems SkillDetailSupportGems `json:"supportGems"`
	Dps         map[string][]int       `json:"dps"`
}

// BuildsResponse is the body of /0/getbuildoverview. Slices such as Names,
// Accounts and Levels are indexed by user id; the *Use maps are keyed by the
// position of an entry in the matching list and hold delta encoded user ids,
// see DecodeUserIDs.
type BuildsResponse struct {
	ClassNames                 []string            `json:"classNames"`
	Classes                    []int               `json:"classes"`
	UniqueItems                []BuildsUniqueItem  `json:"uniqueItems"`
	UniqueItemUse              map[string][]int    `json:"uniqueItemUse"`
	ActiveSkills               []BuildsSkill       `json:"activeSkills"`
	ActiveSkillUse             map[string][]int    `json:"activeSkillUse"`
	AllSkills                  []BuildsSkill       `json:"allSkills"`
	AllSkillUse                map[string][]int    `json:"allSkillUse"`
	Keystones                  []BuildsPassiveNode `json:"keystones"`
	KeystoneUse                map[string][]int    `json:"keystoneUse"`
	FetchModeUse               []int               `json:"fetchModeUse"`
	FetchModes                 []NamedObject       `json:"fetchModes"`
	Levels                     []int               `json:"levels"`
	Life                       []int               `json:"life"`
	EnergyShield               []int               `json:"energyShield"`
	WeaponConfigurationTypeUse []int               `json:"weaponConfigurationTypeUse"`
	WeaponConfigurationTypes   []NamedObject       `json:"weaponConfigurationTypes"`
	Names                      []string            `json:"names"`
	Accounts                   []string            `json:"accounts"`
	LadderRanks                []int               `json:"ladderRanks"`
	UpdatedUTC                 string              `json:"updatedUtc"`
	SkillModes                 []NamedObject       `json:"skillModes"`
	SkillModeUse               map[string][]int    `json:"skillModeUse"`
	SkillDetails               []BuildsSkillDetail `json:"skillDetails"`
	DelveSolo                  []int               `json:"delveSolo"`
	Language                   Language            `json:"language"`
	Intervals                  []json.RawMessage   `json:"intervals"`
	IntervalNames              []string            `json:"intervalNames"`
	Leagues                    []string            `json:"leagues"`
	LeagueNames                []string            `json:"leagueNames"`
	TwitchAccounts             []string            `json:"twitchAccounts"`
	TwitchNames                []string            `json:"twitchNames"`
	Online                     []string            `json:"online"`
	UniqueItemTooltips         []bool              `json:"uniqueItemTooltips"`
	KeystoneTooltips           []bool              `json:"keystoneTooltips"`
	Masteries                  []NamedObject       `json:"masteries"`
	MasteryUse                 map[string][]int    `json:"masteryUse"`
}
