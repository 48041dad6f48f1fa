package timepicker

import "strings"

// Labels are the fixed strings the picker shows.
type Labels struct {
	Placeholder string
	Hours       string
	Minutes     string
	Confirm     string
	Clear       string
}

// EnglishLabels returns the default label set.
func EnglishLabels() Labels {
	return Labels{
		Placeholder: "Choose a time",
		Hours:       "hour",
		Minutes:     "minute",
		Confirm:     "Confirm",
		Clear:       "Clear",
	}
}

// ArabicLabels returns the Arabic label set.
func ArabicLabels() Labels {
	return Labels{
		Placeholder: "اختر الوقت",
		Hours:       "ساعة",
		Minutes:     "دقيقة",
		Confirm:     "تأكيد",
		Clear:       "مسح",
	}
}

// Locales lists the locale codes LabelsFor understands.
var Locales = []string{"en", "ar"}

// LabelsFor returns the label set for a locale code such as "ar" or
// "en_US". Unknown locales get EnglishLabels.
func LabelsFor(locale string) Labels {
	if Language(locale) == "ar" {
		return ArabicLabels()
	}
	return EnglishLabels()
}

// Language returns the lower-cased language part of a locale code, so
// "ar_EG" and "AR-eg" both give "ar".
func Language(locale string) string {
	lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(locale)), "-")
	lang, _, _ = strings.Cut(lang, "_")
	return lang
}
