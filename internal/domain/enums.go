package domain

// EmojiCategory classifies an emoji record. The set is fixed; the content
// validator rejects anything outside it.
type EmojiCategory string

const (
	CategorySmileysEmotion EmojiCategory = "SMILEYS_EMOTION"
	CategoryPeopleBody     EmojiCategory = "PEOPLE_BODY"
	CategoryAnimalsNature  EmojiCategory = "ANIMALS_NATURE"
	CategoryFoodDrink      EmojiCategory = "FOOD_DRINK"
	CategoryTravelPlaces   EmojiCategory = "TRAVEL_PLACES"
	CategoryActivities     EmojiCategory = "ACTIVITIES"
	CategoryObjects        EmojiCategory = "OBJECTS"
	CategorySymbols        EmojiCategory = "SYMBOLS"
	CategoryFlags          EmojiCategory = "FLAGS"
)

// EmojiCategories lists every valid emoji category.
var EmojiCategories = []EmojiCategory{
	CategorySmileysEmotion,
	CategoryPeopleBody,
	CategoryAnimalsNature,
	CategoryFoodDrink,
	CategoryTravelPlaces,
	CategoryActivities,
	CategoryObjects,
	CategorySymbols,
	CategoryFlags,
}

// IsValid reports whether c is a known emoji category.
func (c EmojiCategory) IsValid() bool {
	for _, v := range EmojiCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ComboCategory classifies a combo record. Distinct set from emoji categories.
type ComboCategory string

const (
	ComboCategoryRomance         ComboCategory = "ROMANCE"
	ComboCategoryHumor           ComboCategory = "HUMOR"
	ComboCategorySarcasm         ComboCategory = "SARCASM"
	ComboCategoryCelebration     ComboCategory = "CELEBRATION"
	ComboCategoryFriendship      ComboCategory = "FRIENDSHIP"
	ComboCategoryWarning         ComboCategory = "WARNING"
	ComboCategoryWork            ComboCategory = "WORK"
	ComboCategoryInternetCulture ComboCategory = "INTERNET_CULTURE"
)

// ComboCategories lists every valid combo category.
var ComboCategories = []ComboCategory{
	ComboCategoryRomance,
	ComboCategoryHumor,
	ComboCategorySarcasm,
	ComboCategoryCelebration,
	ComboCategoryFriendship,
	ComboCategoryWarning,
	ComboCategoryWork,
	ComboCategoryInternetCulture,
}

// IsValid reports whether c is a known combo category.
func (c ComboCategory) IsValid() bool {
	for _, v := range ComboCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ContextType is the usage context of one context-specific meaning.
type ContextType string

const (
	ContextLiteral           ContextType = "LITERAL"
	ContextSlang             ContextType = "SLANG"
	ContextIronic            ContextType = "IRONIC"
	ContextPassiveAggressive ContextType = "PASSIVE_AGGRESSIVE"
	ContextDating            ContextType = "DATING"
	ContextWork              ContextType = "WORK"
	ContextRedFlag           ContextType = "RED_FLAG"
)

// ContextTypes lists every valid context type.
var ContextTypes = []ContextType{
	ContextLiteral,
	ContextSlang,
	ContextIronic,
	ContextPassiveAggressive,
	ContextDating,
	ContextWork,
	ContextRedFlag,
}

// IsValid reports whether t is a known context type.
func (t ContextType) IsValid() bool {
	for _, v := range ContextTypes {
		if t == v {
			return true
		}
	}
	return false
}

// RiskLevel grades how risky a context meaning or warning is.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// RiskLevels lists every valid risk level.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

// IsValid reports whether r is a known risk level.
func (r RiskLevel) IsValid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// Platform is a messaging platform a note or request can reference.
type Platform string

const (
	PlatformIMessage  Platform = "IMESSAGE"
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformTikTok    Platform = "TIKTOK"
	PlatformWhatsApp  Platform = "WHATSAPP"
	PlatformSlack     Platform = "SLACK"
	PlatformDiscord   Platform = "DISCORD"
	PlatformTwitter   Platform = "TWITTER"

	// PlatformOther is accepted on interpretation requests only,
	// never on content records.
	PlatformOther Platform = "OTHER"
)

// ContentPlatforms lists the platforms valid on content records.
var ContentPlatforms = []Platform{
	PlatformIMessage,
	PlatformInstagram,
	PlatformTikTok,
	PlatformWhatsApp,
	PlatformSlack,
	PlatformDiscord,
	PlatformTwitter,
}

// RequestPlatforms lists the platforms valid on interpretation requests.
var RequestPlatforms = append(append([]Platform{}, ContentPlatforms...), PlatformOther)

// IsValidContent reports whether p may appear on a content record.
func (p Platform) IsValidContent() bool {
	for _, v := range ContentPlatforms {
		if p == v {
			return true
		}
	}
	return false
}

// IsValidRequest reports whether p may appear on an interpretation request.
func (p Platform) IsValidRequest() bool {
	return p == PlatformOther || p.IsValidContent()
}

// Label returns the human-readable platform name used in prompts.
// Every case is listed explicitly; adding a platform without a label
// is a compile-visible omission here.
func (p Platform) Label() string {
	switch p {
	case PlatformIMessage:
		return "iMessage"
	case PlatformInstagram:
		return "Instagram"
	case PlatformTikTok:
		return "TikTok"
	case PlatformWhatsApp:
		return "WhatsApp"
	case PlatformSlack:
		return "Slack"
	case PlatformDiscord:
		return "Discord"
	case PlatformTwitter:
		return "Twitter/X"
	case PlatformOther:
		return "an unspecified messaging app"
	}
	return string(p)
}

// Generation tags a generational usage note.
type Generation string

const (
	GenerationGenZ       Generation = "GEN_Z"
	GenerationMillennial Generation = "MILLENNIAL"
	GenerationGenX       Generation = "GEN_X"
	GenerationBoomer     Generation = "BOOMER"
)

// Generations lists every valid generation.
var Generations = []Generation{
	GenerationGenZ,
	GenerationMillennial,
	GenerationGenX,
	GenerationBoomer,
}

// IsValid reports whether g is a known generation.
func (g Generation) IsValid() bool {
	for _, v := range Generations {
		if g == v {
			return true
		}
	}
	return false
}

// RelationshipContext is the sender/recipient relationship on an
// interpretation request.
type RelationshipContext string

const (
	RelationshipRomanticPartner RelationshipContext = "ROMANTIC_PARTNER"
	RelationshipFriend          RelationshipContext = "FRIEND"
	RelationshipFamily          RelationshipContext = "FAMILY"
	RelationshipCoworker        RelationshipContext = "COWORKER"
	RelationshipAcquaintance    RelationshipContext = "ACQUAINTANCE"
	RelationshipStranger        RelationshipContext = "STRANGER"
)

// RelationshipContexts lists every valid relationship context.
var RelationshipContexts = []RelationshipContext{
	RelationshipRomanticPartner,
	RelationshipFriend,
	RelationshipFamily,
	RelationshipCoworker,
	RelationshipAcquaintance,
	RelationshipStranger,
}

// IsValid reports whether r is a known relationship context.
func (r RelationshipContext) IsValid() bool {
	for _, v := range RelationshipContexts {
		if r == v {
			return true
		}
	}
	return false
}

// Label returns the human-readable relationship phrase used in prompts.
// Exhaustive on purpose, same as Platform.Label.
func (r RelationshipContext) Label() string {
	switch r {
	case RelationshipRomanticPartner:
		return "their romantic partner"
	case RelationshipFriend:
		return "a friend"
	case RelationshipFamily:
		return "a family member"
	case RelationshipCoworker:
		return "a coworker"
	case RelationshipAcquaintance:
		return "an acquaintance"
	case RelationshipStranger:
		return "a stranger"
	}
	return string(r)
}

// Tone is the overall tone of an interpretation result.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
	ToneNegative Tone = "negative"
)

// IsValid reports whether t is a known tone.
func (t Tone) IsValid() bool {
	return t == TonePositive || t == ToneNeutral || t == ToneNegative
}

// Severity grades a red flag on an interpretation result.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}
