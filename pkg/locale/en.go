package locale

import "github.com/dmitrymomot/fakedata/pkg/sample"

// EN is the built-in English dataset. Weights approximate relative name
// frequency; they only need to be plausible, not census-accurate.
var EN = &Dataset{
	Code: "en",

	FirstNames: []sample.Weighted[string]{
		{Value: "James", Weight: 5}, {Value: "Mary", Weight: 5},
		{Value: "John", Weight: 5}, {Value: "Patricia", Weight: 4},
		{Value: "Robert", Weight: 4}, {Value: "Jennifer", Weight: 4},
		{Value: "Michael", Weight: 4}, {Value: "Linda", Weight: 3},
		{Value: "William", Weight: 3}, {Value: "Elizabeth", Weight: 3},
		{Value: "David", Weight: 3}, {Value: "Barbara", Weight: 2},
		{Value: "Richard", Weight: 2}, {Value: "Susan", Weight: 2},
		{Value: "Joseph", Weight: 2}, {Value: "Jessica", Weight: 2},
		{Value: "Thomas", Weight: 2}, {Value: "Sarah", Weight: 2},
		{Value: "Charles", Weight: 2}, {Value: "Karen", Weight: 2},
		{Value: "Daniel", Weight: 2}, {Value: "Nancy", Weight: 1},
		{Value: "Matthew", Weight: 1}, {Value: "Lisa", Weight: 1},
		{Value: "Anthony", Weight: 1}, {Value: "Margaret", Weight: 1},
		{Value: "Mark", Weight: 1}, {Value: "Betty", Weight: 1},
		{Value: "Donald", Weight: 1}, {Value: "Sandra", Weight: 1},
		{Value: "Steven", Weight: 1}, {Value: "Ashley", Weight: 1},
		{Value: "Paul", Weight: 1}, {Value: "Dorothy", Weight: 1},
		{Value: "Andrew", Weight: 1}, {Value: "Kimberly", Weight: 1},
		{Value: "Joshua", Weight: 1}, {Value: "Emily", Weight: 1},
		{Value: "Kenneth", Weight: 1}, {Value: "Donna", Weight: 1},
	},

	LastNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones",
		"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
		"Thomas", "Taylor", "Moore", "Jackson", "Martin",
		"Lee", "Perez", "Thompson", "White", "Harris",
		"Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
		"Walker", "Young", "Allen", "King", "Wright",
		"Scott", "Torres", "Nguyen", "Hill", "Flores",
	},

	CityPrefixes: []string{"North", "East", "West", "South", "New", "Lake", "Port", "Fort"},
	CityBases: []string{
		"Spring", "River", "Oak", "Maple", "Cedar", "Pine", "Willow",
		"Clay", "Fair", "Green", "Stone", "Brook", "Ash", "Birch",
		"Hill", "Mill", "Bridge", "Clear", "Silver", "Golden",
	},
	CitySuffixes: []string{"ville", "ton", "burgh", "field", "haven", "port", "mouth", "side", "dale", "ford"},

	StreetSuffixes: []string{
		"Street", "Avenue", "Boulevard", "Lane", "Road",
		"Drive", "Court", "Place", "Terrace", "Way",
	},

	BuildingNumberFormats: []string{"#", "##", "###", "####"},
	ZipFormats:            []string{"#####", "#####-####"},
	PhoneFormats:          []string{"(###) ###-####", "###-###-####", "1-###-###-####"},

	TLDs:             []string{"com", "net", "org", "io", "dev", "info", "biz"},
	FreeEmailDomains: []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "proton.me"},

	Words: []string{
		"apple", "anchor", "basket", "beacon", "candle", "canyon",
		"dagger", "desert", "ember", "engine", "falcon", "forest",
		"garden", "glacier", "harbor", "hollow", "island", "ivory",
		"jungle", "kettle", "lantern", "meadow", "marble", "nectar",
		"orchard", "outpost", "pebble", "prairie", "quarry", "ridge",
		"saddle", "summit", "thicket", "timber", "valley", "vessel",
		"walnut", "willow", "zenith", "zephyr",
	},
}

func init() {
	MustRegister(EN)
}
