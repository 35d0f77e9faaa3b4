package mailcheck

import (
	"strings"

	"tempmail/internal/model"
)

// verificationKeywords covers English plus the Swedish variants the target
// registration flows send.
var verificationKeywords = []string{
	"verify", "verification", "confirm", "activate", "otp", "code",
	"bc.game", "verifiera", "bekräfta", "aktivera",
}

// IsVerification reports whether a message looks like a verification/OTP
// email. The check is deliberately broad: a false positive just means an
// irrelevant message gets scanned for a code, while a false negative drops
// the verification silently. Anything sent from @bc.game counts regardless
// of keywords.
func IsVerification(msg *model.NormalizedMessage) bool {
	subject := strings.ToLower(msg.Subject)
	from := strings.ToLower(msg.From)
	content := strings.ToLower(msg.TextBody + msg.HTMLBody)

	if strings.Contains(from, "@bc.game") {
		return true
	}
	for _, keyword := range verificationKeywords {
		if strings.Contains(subject, keyword) ||
			strings.Contains(from, keyword) ||
			strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}
