package csvio

import "regexp"

var (
	isoDateRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	europeanDateRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
)

// ToEuropean converts YYYY-MM-DD to DD.MM.YYYY. A value not in ISO form is
// returned unchanged with ok=false; the caller decides whether that makes
// the surrounding row unusable.
func ToEuropean(isoDate string) (string, bool) {
	if !isoDateRe.MatchString(isoDate) {
		return isoDate, false
	}
	return isoDate[8:10] + "." + isoDate[5:7] + "." + isoDate[0:4], true
}

// ToISO converts DD.MM.YYYY to YYYY-MM-DD. A value not in European form is
// returned unchanged with ok=false.
func ToISO(europeanDate string) (string, bool) {
	if !europeanDateRe.MatchString(europeanDate) {
		return europeanDate, false
	}
	return europeanDate[6:10] + "-" + europeanDate[3:5] + "-" + europeanDate[0:2], true
}
