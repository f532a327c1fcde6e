package english

import "strings"

// dictionary is the English word list of spec.md §4.3.3: a set of common
// words and programming tokens. It is not filtered against Vietnamese
// syllables; entries such as "do", "can", "man" and "than" are also valid
// Vietnamese spellings.
var dictionary = buildDictionary()

func buildDictionary() map[string]bool {
	words := []string{
		// common English words
		"the", "and", "for", "are", "but", "not", "you", "all", "can",
		"had", "her", "was", "one", "our", "out", "day", "get", "has",
		"him", "his", "how", "man", "new", "now", "old", "see", "two",
		"way", "who", "boy", "did", "its", "let", "put", "say", "she",
		"too", "use", "with", "have", "that", "this", "from", "they",
		"know", "want", "been", "good", "much", "some", "time", "very",
		"when", "come", "here", "just", "like", "long", "make", "many",
		"over", "such", "take", "than", "them", "well", "were", "what",
		"your", "about", "after", "again", "before", "could", "every",
		"first", "found", "great", "house", "large", "learn", "never",
		"other", "place", "plant", "point", "right", "small", "sound",
		"spell", "still", "study", "their", "there", "these", "thing",
		"think", "three", "water", "where", "which", "world", "would",
		"write", "hello", "world", "food", "work", "zone", "jump",
		"just", "json", "fix", "six", "mix", "box", "text", "next",
		"exam", "example", "export", "express", "execute",

		// programming/tech tokens
		"const", "class", "async", "await", "function", "return",
		"import", "export", "struct", "interface", "package", "public",
		"private", "static", "void", "null", "true", "false", "string",
		"int", "float", "double", "bool", "byte", "char", "array",
		"slice", "map", "chan", "goroutine", "defer", "panic", "recover",
		"error", "nil", "println", "printf", "fmt", "var", "let",
		"switch", "case", "break", "continue", "default", "range",
		"for", "while", "do", "if", "else", "elif", "try", "catch",
		"throw", "finally", "module", "require", "console", "window",
		"document", "node", "http", "json", "yaml", "toml", "sql",
		"select", "insert", "update", "delete", "table", "index",
		"commit", "rollback", "query", "schema", "server", "client",
		"request", "response", "header", "token", "config", "build",
		"test", "debug", "deploy", "docker", "kubectl", "git", "push",
		"pull", "merge", "branch", "commit", "repo", "clone",
	}

	dict := make(map[string]bool, len(words))
	for _, w := range words {
		dict[w] = true
	}
	return dict
}

// InDictionary reports whether raw's rendered keystrokes (as lower-case
// Latin letters) exactly equal a dictionary entry, or are currently a
// prefix of one — spec.md §4.3.3 says lookup is on "the current raw-input
// prefix/exact match".
func InDictionary(raw []Keystroke) bool {
	w := word(raw)
	if w == "" {
		return false
	}
	if dictionary[w] {
		return true
	}
	for entry := range dictionary {
		if strings.HasPrefix(entry, w) {
			return true
		}
	}
	return false
}

// ExactDictionaryMatch reports whether raw's rendered keystrokes are an
// exact dictionary entry, unlike InDictionary, which also accepts a
// prefix of one. The engine's dictionary checks use this one.
func ExactDictionaryMatch(raw []Keystroke) bool {
	return dictionary[word(raw)]
}
