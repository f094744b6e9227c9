package index

// defaultStopwords returns the fixed English stopword list removed from the
// unigram stream before n-gram construction.
func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that", "these",
		"those", "from", "up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through", "during",
		"before", "after", "above", "below", "out", "off", "own", "same",
		"too", "very", "can", "will", "just", "don", "should", "now",
		"what", "which", "who", "whom", "where", "when", "why", "how",
		"do", "does", "did", "doing", "have", "has", "had", "having",
		"he", "she", "his", "her", "hers", "him", "its", "itself",
		"they", "them", "their", "theirs", "we", "us", "our", "ours",
		"you", "your", "yours", "me", "my", "mine", "am", "not", "no",
		"nor", "only", "both", "each", "few", "more", "most", "other",
		"some", "any", "all", "there", "here", "once", "because", "while",
		"until", "against",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
