package curator

import "strings"

const defaultPersona = "You are a music historian and curator with a wide lens across cultures and decades."

var personas = map[string]string{
	"dj":                        "You are a club DJ with encyclopedic knowledge of electronic, dance, club music, and underground scenes.",
	"record store owner":        "You are a veteran record store owner with 30 years of experience and deep knowledge of rare, influential, and underground music.",
	"lame parents":              "You are a music-obsessed parent who grew up collecting vinyl and experiencing multiple musical eras firsthand.",
	"avant-garde composer":      "You are an avant-garde composer who merges experimental music theory with global sounds.",
	"pop culture archaeologist": "You are a pop culture archaeologist, excavating forgotten hits and fascinating obscurities from every era.",
	"psychedelic crate digger":  "You are a psychedelic crate digger, unearthing mind-bending tracks from 60s psych rock to cosmic beat tapes.",
}

var regions = map[string]string{
	"western":       "Western (US, UK, Canada, Australia, Europe)",
	"international": "International Mix",
	"latin":         "Latin America",
	"japan":         "Japan",
	"korea":         "Korea",
	"france":        "France",
	"germany":       "Germany",
	"africa":        "Africa",
	"india":         "India",
	"middle_east":   "Middle East",
	"global":        "Global Mix",
}

var eras = map[string]string{
	"any":      "Any era",
	"2020s":    "2020s",
	"2010s":    "2010s",
	"2000s":    "2000s",
	"1990s":    "1990s",
	"1980s":    "1980s",
	"1970s":    "1970s",
	"1960s":    "1960s",
	"pre-1960": "Pre-1960s",
}

// PersonaDescription maps a persona tag to its role sentence.
func PersonaDescription(tag string) string {
	if d, ok := personas[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return d
	}
	return defaultPersona
}

// RegionLabel returns a readable region name; unknown tags pass through.
func RegionLabel(tag string) string {
	tag = strings.TrimSpace(tag)
	if l, ok := regions[strings.ToLower(tag)]; ok {
		return l
	}
	return tag
}

// EraLabel returns a readable era name; unknown tags pass through.
func EraLabel(tag string) string {
	tag = strings.TrimSpace(tag)
	if l, ok := eras[strings.ToLower(tag)]; ok {
		return l
	}
	return tag
}
