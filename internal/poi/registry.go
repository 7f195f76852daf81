package poi

// Category is a top-level POI classification selectable in combination with
// others.
type Category struct {
	// ID is the stable identifier used by API clients.
	ID string
	// Label is the human-readable name.
	Label string
	// Tag is the OSM tag selector, e.g. "shop=convenience".
	Tag string
}

// Categories is the fixed category registry, in declaration order.
// Compilation emits selected categories in this order so that identical
// filter state always yields identical queries.
var Categories = []Category{
	{ID: "convenience", Label: "Convenience", Tag: "shop=convenience"},
	{ID: "supermarket", Label: "Supermarket", Tag: "shop=supermarket"},
	{ID: "confectionery", Label: "Candy / Sweets", Tag: "shop=confectionery"},
	{ID: "bakery", Label: "Bakery", Tag: "shop=bakery"},
	{ID: "ice_cream", Label: "Ice Cream", Tag: "amenity=ice_cream"},
	{ID: "bubble_tea", Label: "Bubble Tea", Tag: "shop=bubble_tea"},
	{ID: "beverages", Label: "Beverage", Tag: "shop=beverages"},
	{ID: "vending", Label: "Vending (any)", Tag: "vending=*"},
}

// CategoryByID looks up a registry entry by its identifier.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// ConvenienceChains is the fixed registry of known convenience store chains,
// including native spellings. Chain-only searches match each name against
// brand, name and their :en/:ja variants.
var ConvenienceChains = []string{
	"7-Eleven", "Seven Eleven", "セブン-イレブン",
	"FamilyMart", "ファミリーマート",
	"Lawson", "ローソン",
	"Ministop", "ミニストップ",
	"Daily Yamazaki", "デイリーヤマザキ",
	"NewDays", "New Days", "NewDay",
	"Popura", "ポプラ",
	"Seicomart", "セイコーマート",
}

// chainNameTags are the tag keys a chain name is matched against.
var chainNameTags = []string{"brand", "name", "brand:en", "name:en", "brand:ja", "name:ja"}

// AmenityID identifies an independent boolean amenity filter.
type AmenityID string

// Amenity filter identifiers.
const (
	Amenity24h            AmenityID = "24_7"
	AmenityToilet         AmenityID = "toilet"
	AmenityCard           AmenityID = "credit_cards"
	AmenityParking        AmenityID = "parking"
	AmenityWheelchair     AmenityID = "wheelchair"
	AmenityOutdoorSeating AmenityID = "outdoor_seating"
	AmenityHotFood        AmenityID = "hot_food"
	AmenityLottery        AmenityID = "lottery"
	AmenityCigarettes     AmenityID = "cigarettes"
	AmenityAtm            AmenityID = "atm"
	AmenityMicrowave      AmenityID = "microwave"
	AmenityOpenNow        AmenityID = "open_now"
)

// AmenityFilter maps one boolean toggle to its query clause and its tag
// predicate. Each active filter contributes exactly one clause; compound
// signals keep their OR alternatives inside the clause.
type AmenityFilter struct {
	ID    AmenityID
	Label string
	// Clause is the tag-match text appended to the compiled expression.
	// Empty for filters evaluated client-side after the query returns.
	Clause string
	// Match evaluates the filter against a normalized tag mapping.
	Match func(tags map[string]string) bool
}

// ClientSide reports whether the filter is applied after fetching results
// rather than being compiled into the query.
func (f AmenityFilter) ClientSide() bool {
	return f.Clause == ""
}

// AmenityFilters is the fixed amenity filter registry. Declaration order is
// the order clauses appear in compiled queries.
var AmenityFilters = []AmenityFilter{
	{
		ID: Amenity24h, Label: "24/7",
		Clause: `["opening_hours"="24/7"]`,
		Match:  func(tags map[string]string) bool { return tags["opening_hours"] == "24/7" },
	},
	{
		ID: AmenityToilet, Label: "Toilet",
		Clause: `["toilets"="yes"]`,
		Match:  tagYes("toilets"),
	},
	{
		ID: AmenityCard, Label: "Credit cards",
		Clause: `["payment:credit_cards"="yes"]`,
		Match:  tagYes("payment:credit_cards"),
	},
	{
		ID: AmenityParking, Label: "Parking",
		Clause: `["parking"="yes"]`,
		Match:  tagYes("parking"),
	},
	{
		ID: AmenityWheelchair, Label: "Wheelchair",
		Clause: `["wheelchair"="yes"]`,
		Match:  tagYes("wheelchair"),
	},
	{
		ID: AmenityOutdoorSeating, Label: "Outdoor seating",
		Clause: `["outdoor_seating"="yes"]`,
		Match:  tagYes("outdoor_seating"),
	},
	{
		ID: AmenityHotFood, Label: "Hot food",
		Clause: `["takeaway"="yes"]`,
		Match:  tagYes("takeaway"),
	},
	{
		ID: AmenityLottery, Label: "Lottery",
		Clause: `["lottery"="yes"] OR ["shop"="lottery"]`,
		Match: func(tags map[string]string) bool {
			return tags["lottery"] == "yes" || tags["shop"] == "lottery"
		},
	},
	{
		ID: AmenityCigarettes, Label: "Cigarettes",
		Clause: `["tobacco"="yes"] OR ["shop"="tobacco"] OR ["vending"="cigarettes"]`,
		Match: func(tags map[string]string) bool {
			return tags["tobacco"] == "yes" || tags["shop"] == "tobacco" || tags["vending"] == "cigarettes"
		},
	},
	{
		ID: AmenityAtm, Label: "ATM",
		Clause: `["atm"="yes"]`,
		Match:  tagYes("atm"),
	},
	{
		ID: AmenityMicrowave, Label: "Microwave",
		Clause: `["microwave"="yes"]`,
		Match:  tagYes("microwave"),
	},
	{
		// Open/closed state is time-dependent and cannot be expressed in the
		// compiled query; the service drops closed spots after normalization.
		ID: AmenityOpenNow, Label: "Open now",
		Match: func(map[string]string) bool { return false },
	},
}

// AmenityFilterByID looks up a registry entry by its identifier.
func AmenityFilterByID(id AmenityID) (AmenityFilter, bool) {
	for _, f := range AmenityFilters {
		if f.ID == id {
			return f, true
		}
	}
	return AmenityFilter{}, false
}

// tagYes builds a predicate matching an exact "yes" value for one tag key.
func tagYes(key string) func(map[string]string) bool {
	return func(tags map[string]string) bool { return tags[key] == "yes" }
}
