package extract

import (
	"regexp"

	"tagnest/models"
)

// The patterns are constant literals, so an invalid pattern is a build defect
// surfaced by MustCompile at startup, never a per-call error.
var (
	mentionRegex = regexp.MustCompile(`(?i)@[a-zA-Z0-9_\-.]+`)
	hashtagRegex = regexp.MustCompile(`(?i)#[a-zA-Z0-9_\-.]+`)
)

// ExtractMentions finds unique @mentions in caption text.
// Example: "@MrBeast and @MrBeast again" -> ["@MrBeast"]
// Tokens keep their leading @ and original casing; "@Name" and "@name" are
// distinct entries. Output order is unspecified.
func ExtractMentions(text string) []string {
	return matchUnique(mentionRegex, text)
}

// ExtractHashtags finds unique #hashtags in caption text.
// Example: "Try this! #fyp #Challenge2025" -> ["#fyp", "#Challenge2025"]
// Same dedup and casing rules as ExtractMentions.
func ExtractHashtags(text string) []string {
	return matchUnique(hashtagRegex, text)
}

// matchUnique collects every non-overlapping match into a set and returns it
// as a slice. Ranging over the map is what leaves the order unspecified.
func matchUnique(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)

	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		seen[m] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	return out
}

// ParseSocialText runs the mention and/or hashtag pass over text depending on
// the flags. With both flags false it returns an empty result without
// scanning at all.
func ParseSocialText(text string, wantMentions, wantHashtags bool) models.ExtractionResult {
	result := models.ExtractionResult{
		Mentions: []string{},
		Hashtags: []string{},
	}

	if !wantMentions && !wantHashtags {
		return result
	}
	if wantMentions {
		result.Mentions = ExtractMentions(text)
	}
	if wantHashtags {
		result.Hashtags = ExtractHashtags(text)
	}
	return result
}
