// File: services/dialogue/intent.go
package dialogue

import "regexp"

// Intent is a tag from the fixed vocabulary of things a message can ask for.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentPopular        Intent = "popular"
	IntentSpecial        Intent = "special"
	IntentMostOrdered    Intent = "most_ordered"
	IntentCategoryBrowse Intent = "category_browse"
	IntentMenu           Intent = "menu"
	IntentCategories     Intent = "categories"
	IntentReservation    Intent = "reservation"
	IntentOrder          Intent = "order"
	IntentTracking       Intent = "tracking"
	IntentPayment        Intent = "payment"
	IntentRecommendation Intent = "recommendation"
	IntentCancel         Intent = "cancel"
	IntentHelp           Intent = "help"
)

// matcher tags a regular expression with the intent it detects.
type matcher struct {
	intent  Intent
	pattern *regexp.Regexp
}

// matchers is evaluated top-down with early return in Dispatch. The order is
// a first-class contract: narrow requests (popular dishes, specials) must win
// over the generic menu pattern that would otherwise swallow them.
var matchers = []matcher{
	{IntentPopular, regexp.MustCompile(`\bpopular\b|\bbest\s*sell(?:er|ing)?\b|\bfamous\b`)},
	{IntentSpecial, regexp.MustCompile(`\bspecials?\b|\bchefs?\s+special\b|\btodays?\s+deal\b`)},
	{IntentMostOrdered, regexp.MustCompile(`most\s+(?:ordered|repeated)|top\s+dishes`)},
	{IntentCategoryBrowse, regexp.MustCompile(`(?:show|explore|browse|open)\s+(?:me\s+)?(?:the\s+)?([a-z ]+?)\s+(?:category|section)`)},
	{IntentReservation, regexp.MustCompile(`\breserv(?:e|ation)\b|\bbook(?:ing)?\b|\btable\s+for\b`)},
	{IntentTracking, regexp.MustCompile(`\btrack\b|where\s+is\s+my\s+order|order\s+status`)},
	{IntentCancel, cancelRe},
	{IntentOrder, regexp.MustCompile(`\border\b|\bbuy\b|i\s+(?:want|would\s+like)\s+(?:to\s+(?:eat|have)|an?\b|some\b)`)},
	{IntentPayment, regexp.MustCompile(`\bpay(?:ment)?\b|\btransaction\b|\bpaid\b`)},
	{IntentRecommendation, regexp.MustCompile(`\brecommend\b|suggest\s+(?:me\s+)?(?:something|a\s+dish|food)`)},
	{IntentMenu, regexp.MustCompile(`\bmenu\b|\bdishes\b|\bfood\b|what\s+(?:do\s+you\s+)?(?:have|serve)`)},
	{IntentCategories, regexp.MustCompile(`\bcategor(?:y|ies)\b`)},
	{IntentHelp, regexp.MustCompile(`\bhelp\b|how\s+(?:do|does|can)\b`)},
	{IntentGreeting, regexp.MustCompile(`^(?:hi|hii+|hello|hey|salam|assalam|good\s+(?:morning|afternoon|evening))\b`)},
}

// Classify evaluates every matcher independently and returns all intents
// whose pattern matches. A message can carry several intents; dispatch order
// decides which one is acted on.
func Classify(text string) []Intent {
	var found []Intent
	for _, m := range matchers {
		if m.pattern.MatchString(text) {
			found = append(found, m.intent)
		}
	}
	return found
}

// FirstIntent walks the ordered matcher list and returns the first hit.
func FirstIntent(text string) (Intent, bool) {
	for _, m := range matchers {
		if m.pattern.MatchString(text) {
			return m.intent, true
		}
	}
	return "", false
}

// CategoryBrowseQuery extracts the category fragment from an explicit
// browse request ("show me the desserts category").
func CategoryBrowseQuery(text string) (string, bool) {
	for _, m := range matchers {
		if m.intent != IntentCategoryBrowse {
			continue
		}
		if sub := m.pattern.FindStringSubmatch(text); sub != nil {
			return sub[1], true
		}
	}
	return "", false
}

var (
	affirmativeRe = regexp.MustCompile(`^(?:yes|yeah|yep|sure|ok(?:ay)?|confirm(?:ed)?|proceed|go\s+ahead|order\s+now|sounds\s+good)\b`)
	negativeRe    = regexp.MustCompile(`^(?:no|nope|nah|not\s+now|dont|do\s+not)\b`)
	cancelRe      = regexp.MustCompile(`\bcancel\b|never\s*mind|forget\s+it`)

	reservationKeywordsRe = regexp.MustCompile(`\breserv(?:e|ation)\b|\bbook(?:ing)?\b|\btable\s+for\b`)
	suggestTimeRe         = regexp.MustCompile(`suggest\s+(?:a\s+|another\s+|some\s+)?times?\b|other\s+times?\b|alternat\w*\s+times?\b`)
)

// IsAffirmative reports an explicit yes/confirm/proceed.
func IsAffirmative(text string) bool { return affirmativeRe.MatchString(text) }

// IsCancellation reports an explicit abandon of the current flow. "cancel my
// reservation" must cancel even though it also carries reservation vocabulary,
// so dispatch checks this before any intent matching.
func IsCancellation(text string) bool { return cancelRe.MatchString(text) }

// IsNegative reports an explicit refusal.
func IsNegative(text string) bool { return negativeRe.MatchString(text) }

// HasReservationKeywords reports reservation vocabulary anywhere in the text.
func HasReservationKeywords(text string) bool { return reservationKeywordsRe.MatchString(text) }

// WantsTimeSuggestions reports a request to scan for alternate time slots.
func WantsTimeSuggestions(text string) bool { return suggestTimeRe.MatchString(text) }
