package service

// Maximum content lengths in runes. Oversized input is truncated,
// not rejected.
const (
	maxPostContent    = 2000
	maxCommentContent = 1000
	maxMessageContent = 1000
)

func truncateContent(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
