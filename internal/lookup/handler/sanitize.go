package handler

import (
	"regexp"
	"strings"
)

var (
	urlPattern       = regexp.MustCompile(`https?://\S+`)
	extensionPattern = regexp.MustCompile(`(?i)\.(png|jpe?g|gif|mp4|webm|mov|avi|mp3|wav|ogg|pdf|docx?|xlsx?|pptx?|zipx?|rar|7z|exe|dll|bat|cmd|sh|ps1|js|html?|php|aspx?|jsp|py|rb|pl|cgi|swf|flv|wmv|m4v|mkv|iso|img|dmg|apk|ipa|deb|rpm|msi|pkg|tar|gz|bz2|xz|tgz|tbz2|txz|ace|arc|arj|cab|cpio|lzh|wim|xar)$`)
	unsafeChars      = regexp.MustCompile("[<>{}\\[\\]|\\\\^~`]")
	wwwPattern       = regexp.MustCompile(`www\.\S+`)
	pathPattern      = regexp.MustCompile(`[a-zA-Z]:\\\S+|\\\S+`)
	dataURIPattern   = regexp.MustCompile(`data:[^;]+;base64,\S+`)
)

// sanitizeUsername neutralises links, file names, paths and markup
// characters in free-form chat input before it is used as a username.
func sanitizeUsername(input string) string {
	s := urlPattern.ReplaceAllString(input, "[URL Removed]")
	s = extensionPattern.ReplaceAllString(s, "[File Extension Removed]")
	s = unsafeChars.ReplaceAllString(s, "")
	s = wwwPattern.ReplaceAllString(s, "[URL Removed]")
	s = pathPattern.ReplaceAllString(s, "[Path Removed]")
	s = dataURIPattern.ReplaceAllString(s, "[Base64 Data Removed]")
	return strings.TrimSpace(s)
}
