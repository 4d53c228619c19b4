package validate

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)
	gstinRegex = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z]{1}[A-Z0-9]{1}[Z]{1}[A-Z0-9]{1}$`)
	panRegex   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	ifscRegex  = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

func Email(email string) bool {
	return emailRegex.MatchString(email)
}

func Phone(phone string) bool {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(phone)
	return phoneRegex.MatchString(cleaned)
}

// GSTIN is optional on seller profiles; an empty value passes.
func GSTIN(gstin string) bool {
	if gstin == "" {
		return true
	}
	return gstinRegex.MatchString(strings.ToUpper(gstin))
}

func PAN(pan string) bool {
	return panRegex.MatchString(strings.ToUpper(pan))
}

func IFSC(ifsc string) bool {
	return ifscRegex.MatchString(strings.ToUpper(ifsc))
}
