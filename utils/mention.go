package utils

import "strings"

// ParseUserMention extracts the user ID from a <@id> or <@!id> mention.
func ParseUserMention(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "<@") || !strings.HasSuffix(arg, ">") {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(arg, "<@"), ">")
	id = strings.TrimPrefix(id, "!")
	if !isSnowflake(id) {
		return "", false
	}
	return id, true
}

// ParseChannelMention extracts the channel ID from a <#id> mention.
func ParseChannelMention(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "<#") || !strings.HasSuffix(arg, ">") {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(arg, "<#"), ">")
	if !isSnowflake(id) {
		return "", false
	}
	return id, true
}

// FirstChannelMention scans whitespace-separated fields for the first
// channel mention.
func FirstChannelMention(content string) (string, bool) {
	for _, field := range strings.Fields(content) {
		if id, ok := ParseChannelMention(field); ok {
			return id, true
		}
	}
	return "", false
}

func isSnowflake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
