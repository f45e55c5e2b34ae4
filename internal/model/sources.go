package model

// BreachRecord is one historical breach entry returned by the breach
// database. Records are immutable once fetched; Name is the uniqueness key
// used when merging scans for multiple email addresses.
type BreachRecord struct {
	// Name is the machine-readable breach identifier (uniqueness key).
	Name string `json:"name"`

	// Title is the human-readable breach title.
	Title string `json:"title"`

	// Domain is the breached site's domain. May be empty for aggregate lists.
	Domain string `json:"domain"`

	// BreachDate is the date the breach occurred, in YYYY-MM-DD form.
	BreachDate string `json:"breach_date"`

	// DataClasses lists the kinds of data exposed (e.g. "Passwords").
	DataClasses []string `json:"data_classes"`

	// IsVerified is true when the breach has been verified as legitimate.
	IsVerified bool `json:"is_verified"`

	// IsFabricated is true when the breach is believed to be fabricated.
	IsFabricated bool `json:"is_fabricated"`

	// IsSensitive is true for breaches whose mere presence is sensitive.
	IsSensitive bool `json:"is_sensitive"`

	// IsSpamList is true when the source is a spam list, not a real breach.
	IsSpamList bool `json:"is_spam_list"`

	// IsMalware is true when the data was sourced from malware.
	IsMalware bool `json:"is_malware"`

	// PwnCount is the number of accounts in the breach.
	PwnCount int `json:"pwn_count"`

	// Description is the breach description (may contain HTML).
	Description string `json:"description,omitempty"`
}

// EmailReputation is the reputation lookup result for one email address.
type EmailReputation struct {
	// Email is the address that was looked up.
	Email string `json:"email"`

	// Reputation is the provider's coarse rating (e.g. "high", "low").
	Reputation string `json:"reputation,omitempty"`

	// Suspicious is the provider's overall suspicion flag.
	Suspicious bool `json:"suspicious"`

	// References is the number of references backing the rating.
	References int `json:"references,omitempty"`

	// Details carries the individual reputation signals.
	Details ReputationDetails `json:"details"`
}

// ReputationDetails holds the individual signals behind a reputation rating.
// Only the signals the aggregation engine consumes are modeled; unknown
// provider fields are dropped at the adapter boundary.
type ReputationDetails struct {
	// CredentialsLeaked is true when credentials for the address have leaked.
	CredentialsLeaked bool `json:"credentials_leaked"`

	// DataBreach is true when the address appears in known data breaches.
	DataBreach bool `json:"data_breach"`

	// MaliciousActivity is true when the address was seen in malicious activity.
	MaliciousActivity bool `json:"malicious_activity"`

	// Spam is true when the address has been reported as a spam source.
	Spam bool `json:"spam"`

	// FreeProvider is true for addresses on free email providers.
	FreeProvider bool `json:"free_provider"`

	// Disposable is true for throwaway email providers.
	Disposable bool `json:"disposable"`
}

// FoundProfile is one site where a username-presence search found the handle.
type FoundProfile struct {
	// Site is the network or site name.
	Site string `json:"site"`

	// URL is the profile URL.
	URL string `json:"url"`
}

// UsernamePresence is the result of a username-presence search.
type UsernamePresence struct {
	// Username is the handle that was searched.
	Username string `json:"username"`

	// Found lists the sites where the handle exists.
	Found []FoundProfile `json:"found"`
}

// Sentiment classifies the tone of a social media post.
type Sentiment string

// Sentiment values as reported by the social mention source.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SocialPost is one social media mention.
type SocialPost struct {
	// Network is the social network the post was found on.
	Network string `json:"network"`

	// User is the display name of the posting account.
	User string `json:"user,omitempty"`

	// Text is the post body.
	Text string `json:"text,omitempty"`

	// PostedAt is the post timestamp as reported by the source.
	PostedAt string `json:"posted_at,omitempty"`

	// URL links to the post.
	URL string `json:"url,omitempty"`

	// Sentiment is the source's tone classification.
	Sentiment Sentiment `json:"sentiment,omitempty"`
}

// SentimentCounts aggregates mention counts by tone.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// SocialMentions is the result of a social media mention search.
type SocialMentions struct {
	// Query is the search query that produced these mentions.
	Query string `json:"query,omitempty"`

	// Posts lists the individual mentions.
	Posts []SocialPost `json:"posts"`

	// Sentiment carries the per-tone counts.
	Sentiment SentimentCounts `json:"sentiment"`
}

// WebResult is one organic web search result. Link is the uniqueness key
// used when merging results across email addresses.
type WebResult struct {
	// Position is the result's rank in its source result page (1-based).
	Position int `json:"position"`

	// Title is the result title.
	Title string `json:"title"`

	// Link is the result URL (uniqueness key).
	Link string `json:"link"`

	// Snippet is the result snippet text.
	Snippet string `json:"snippet,omitempty"`

	// DisplayedLink is the abbreviated URL shown on the result page.
	DisplayedLink string `json:"displayed_link,omitempty"`

	// SourceEmail is the input email whose search produced this result.
	SourceEmail string `json:"source_email,omitempty"`
}
