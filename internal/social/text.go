package social

import "regexp"

var (
	hashtagPattern = regexp.MustCompile(`#\w+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
)

// Hashtags returns every #tag in text, in order. Never nil.
func Hashtags(text string) []string {
	return matches(hashtagPattern, text)
}

// Mentions returns every @handle in text, in order. Never nil.
func Mentions(text string) []string {
	return matches(mentionPattern, text)
}

func matches(re *regexp.Regexp, text string) []string {
	found := re.FindAllString(text, -1)
	if found == nil {
		return []string{}
	}
	return found
}
