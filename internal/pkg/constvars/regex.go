package constvars

const (
	RegexPersonName            = `^[A-Za-z]([A-Za-z\s'-])*[A-Za-z]$|^[A-Za-z]$`
	RegexContainUppercase      = `[A-Z]`
	RegexContainLowercase      = `[a-z]`
	RegexContainDigit          = `[0-9]`
	RegexContainSpecialChar    = `[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`
	RegexDigitsOnly            = `^[0-9]+$`
	RegexLettersAndSpaces      = `^[A-Za-z\s]+$`
	RegexLicenseNumber         = `^[A-Za-z0-9\-/]+$`
	RegexHTMLTag               = `<\s*/?[a-zA-Z][a-zA-Z0-9]*[^>]*>`
	RegexConsecutiveWhitespace = `\s{2,}`
	RegexDateYYYYMMDD          = `^\d{4}-\d{2}-\d{2}$`
	RegexClockHHMM             = `^\d{1,2}[:.]\d{2}(:\d{2})?$`
)
