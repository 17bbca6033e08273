package extract

import "testing"

func toSet(t *testing.T, tokens []string) map[string]struct{} {
	t.Helper()
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, dup := set[tok]; dup {
			t.Fatalf("duplicate token %q in result %v", tok, tokens)
		}
		set[tok] = struct{}{}
	}
	return set
}

func assertSet(t *testing.T, got []string, want ...string) {
	t.Helper()
	set := toSet(t, got)
	if len(set) != len(want) {
		t.Fatalf("expected %d tokens %v, got %v", len(want), want, got)
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			t.Fatalf("expected token %q in %v", w, got)
		}
	}
}

func TestExtractMentions(t *testing.T) {
	got := ExtractMentions("@MrBeast @EmmaChamberlain @PewDiePie")
	assertSet(t, got, "@MrBeast", "@EmmaChamberlain", "@PewDiePie")
}

func TestExtractMentionsDeduplicates(t *testing.T) {
	got := ExtractMentions("@charlidamelio @charlidamelio @Khaby.Lame")
	assertSet(t, got, "@charlidamelio", "@Khaby.Lame")
}

func TestExtractMentionsCasePreservedAndDistinct(t *testing.T) {
	got := ExtractMentions("@AddisonRae @addisonrae")
	assertSet(t, got, "@AddisonRae", "@addisonrae")
}

func TestExtractMentionsEmptyInput(t *testing.T) {
	if got := ExtractMentions(""); len(got) != 0 {
		t.Fatalf("expected no mentions, got %v", got)
	}
}

func TestExtractMentionsBareMarker(t *testing.T) {
	if got := ExtractMentions("@ and also @!"); len(got) != 0 {
		t.Fatalf("expected no mentions for bare markers, got %v", got)
	}
}

// A marker immediately followed by another marker has no body; scanning
// resumes at the second marker independently.
func TestExtractMentionsDoubledMarker(t *testing.T) {
	got := ExtractMentions("@@name")
	assertSet(t, got, "@name")
}

func TestExtractHashtags(t *testing.T) {
	got := ExtractHashtags("#fyp #trending #CapCut #viral")
	assertSet(t, got, "#fyp", "#trending", "#CapCut", "#viral")
}

func TestExtractHashtagsMixedCaseDistinct(t *testing.T) {
	got := ExtractHashtags("#Shorts #YouTubeShorts #Music #music")
	assertSet(t, got, "#Shorts", "#YouTubeShorts", "#Music", "#music")
}

// Hyphen, underscore and period are part of the tag body, so a trailing
// period stays on the token.
func TestExtractHashtagsPunctuationBody(t *testing.T) {
	got := ExtractHashtags("Try this! #Challenge-2025 #fun.time #go_crazy.")
	assertSet(t, got, "#Challenge-2025", "#fun.time", "#go_crazy.")
}

func TestExtractHashtagsStopAtInvalidChar(t *testing.T) {
	got := ExtractHashtags("check out the #fyp and #Challenge2025!")
	assertSet(t, got, "#fyp", "#Challenge2025")
}

func TestExtractHashtagsBareMarker(t *testing.T) {
	if got := ExtractHashtags("# !"); len(got) != 0 {
		t.Fatalf("expected no hashtags for bare marker, got %v", got)
	}
}

func TestExtractHashtagsEmptyInput(t *testing.T) {
	if got := ExtractHashtags(""); len(got) != 0 {
		t.Fatalf("expected no hashtags, got %v", got)
	}
}

func TestParseSocialTextBoth(t *testing.T) {
	result := ParseSocialText("@MrBeast check out the #fyp and #Challenge2025!", true, true)
	assertSet(t, result.Mentions, "@MrBeast")
	assertSet(t, result.Hashtags, "#fyp", "#Challenge2025")
}

func TestParseSocialTextMentionsOnly(t *testing.T) {
	result := ParseSocialText("@charlidamelio #viral", true, false)
	assertSet(t, result.Mentions, "@charlidamelio")
	if len(result.Hashtags) != 0 {
		t.Fatalf("expected no hashtags, got %v", result.Hashtags)
	}
}

func TestParseSocialTextHashtagsOnly(t *testing.T) {
	result := ParseSocialText("@charlidamelio #viral", false, true)
	assertSet(t, result.Hashtags, "#viral")
	if len(result.Mentions) != 0 {
		t.Fatalf("expected no mentions, got %v", result.Mentions)
	}
}

func TestParseSocialTextNoneEnabled(t *testing.T) {
	result := ParseSocialText("@Khaby.Lame #viral", false, false)
	if len(result.Mentions) != 0 || len(result.Hashtags) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
