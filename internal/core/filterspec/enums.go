package filterspec

// Closed enumerations for profile and beauty filters
// Values are stored lowercase in the warehouse and compared verbatim

// Genders holds the accepted gender values
var Genders = []string{"female", "male", "nonbinary", "unknown"}

// AgeBrackets holds the accepted age bracket values
var AgeBrackets = []string{"13-17", "18-24", "25-34", "35-44", "45-54", "55+"}

// Ethnicities holds the accepted ethnicity categories
var Ethnicities = []string{
	"asian", "black", "hispanic", "middle_eastern", "south_asian", "white", "mixed", "other",
}

// Interests holds the accepted interest categories
var Interests = []string{
	"art", "beauty", "books", "budget", "camping", "cars", "comedy", "cooking",
	"dance", "diy", "education", "fashion", "finance", "fitness", "food", "gaming",
	"haircare", "health", "home", "interior", "kbeauty", "kdrama", "kpop", "language",
	"lifestyle", "luxury", "makeup", "movies", "music", "nutrition", "outdoor",
	"parenting", "pets", "photography", "reviews", "shopping", "skincare", "sports",
	"tech", "travel", "unboxing", "vegan", "vlog", "wellness", "yoga",
}

// Tiers holds the accepted collaboration tiers ordered smallest to largest
var Tiers = []string{"nano", "micro", "mid", "macro", "mega"}

// SkinTypes holds the accepted beauty skin types
var SkinTypes = []string{"combination", "dry", "normal", "oily", "sensitive"}

// SkinConcerns holds the accepted beauty skin concerns
var SkinConcerns = []string{
	"acne", "dryness", "dullness", "pigmentation", "pores", "redness", "sensitivity", "wrinkles",
}

// PersonalColors holds the accepted personal color seasons
var PersonalColors = []string{"autumn_warm", "spring_warm", "summer_cool", "winter_cool"}

// BrandTiers holds the accepted beauty brand tiers
var BrandTiers = []string{"drugstore", "indie", "luxury", "masstige", "premium"}

func toSet(vals []string) map[string]struct{} {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return m
}

var (
	genderSet        = toSet(Genders)
	ageBracketSet    = toSet(AgeBrackets)
	ethnicitySet     = toSet(Ethnicities)
	interestSet      = toSet(Interests)
	tierSet          = toSet(Tiers)
	skinTypeSet      = toSet(SkinTypes)
	skinConcernSet   = toSet(SkinConcerns)
	personalColorSet = toSet(PersonalColors)
	brandTierSet     = toSet(BrandTiers)
)
