package keywords

// defaultStopWords is the fixed stop-word set dropped during keyword
// extraction. Lowercase tokens only.
var defaultStopWords = toSet([]string{
	"the", "and", "for", "are", "but", "not", "you", "all", "any", "can",
	"had", "her", "was", "one", "our", "out", "day", "get", "has", "him",
	"his", "how", "man", "new", "now", "old", "see", "two", "way", "who",
	"with", "have", "this", "will", "your", "from", "they", "know", "want",
	"been", "good", "much", "some", "time", "very", "when", "come", "here",
	"just", "like", "long", "make", "many", "more", "most", "over", "such",
	"take", "than", "them", "well", "were", "what", "where", "which", "while",
	"into", "also", "their", "there", "these", "those", "using", "used", "use",
	"about", "after", "before", "between", "both", "each", "other", "same",
	"should", "would", "could", "through", "during", "without", "within",
	"able", "across", "among", "being", "every", "its", "per", "via",
})

// defaultCommonCapitalized is the denylist of generic English words that
// happen to be capitalized in running text, excluded from technical terms.
var defaultCommonCapitalized = toSet([]string{
	"The", "This", "That", "These", "Those", "There", "Then", "They",
	"As", "In", "On", "At", "To", "For", "Of", "By", "With", "From",
	"And", "But", "Not", "Our", "Your", "All", "Any", "Each", "Per",
	"We", "You", "It", "Is", "Are", "Was", "Were", "Be", "Been",
	"Test", "Tests", "Testing", "Team", "Work", "Working", "New",
	"Must", "Should", "Will", "Can", "May", "About", "After", "Before",
})

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
