package mailcheck

import "regexp"

// codePatterns are tried in priority order. Bare 6-digit numbers are the
// most common OTP format for the services this targets and must win over
// shorter bare numbers, otherwise a 6-digit code could be truncated to its
// first digits. The phrase-anchored patterns are a fallback for codes the
// bare scans missed.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{6}\b`),
	regexp.MustCompile(`\b\d{5}\b`),
	regexp.MustCompile(`\b\d{4}\b`),
	regexp.MustCompile(`(?i)verification code[:\s]*\d{4,6}`),
	regexp.MustCompile(`(?i)your code[:\s]*\d{4,6}`),
	regexp.MustCompile(`(?i)otp[:\s]*\d{4,6}`),
	regexp.MustCompile(`(?i)code[:\s]*\d{4,6}`),
}

var nonDigit = regexp.MustCompile(`\D`)

// ExtractCode scans text for the most likely verification code and returns
// it as a string of 4-6 digits. Matches are taken in the order they occur;
// the digit-length check is a safety net, since every pattern already
// matches 4-6 digits by construction. Returns "" when nothing matches,
// which is the normal "no code yet" outcome.
func ExtractCode(text string) string {
	for _, pattern := range codePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			code := nonDigit.ReplaceAllString(match, "")
			if len(code) >= 4 && len(code) <= 6 {
				return code
			}
		}
	}
	return ""
}
