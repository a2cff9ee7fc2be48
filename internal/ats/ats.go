// Package ats classifies a careers URL into its Applicant Tracking System
// and derives the source-specific identifiers each scrape strategy needs,
// grounded on original_source/api/services/scraper.py's detect_ats,
// _extract_greenhouse_board, _extract_lever_company, and
// _parse_workday_context.
package ats

import (
	"net/url"
	"regexp"
	"strings"
)

// Kind identifies which ATS a careers URL belongs to.
type Kind string

const (
	Greenhouse Kind = "greenhouse"
	Lever      Kind = "lever"
	Workday    Kind = "workday"
	Unknown    Kind = ""
)

// Detect classifies careersURL by host substring. It is injective over the
// Kind set: no input yields two different tags.
func Detect(careersURL string) Kind {
	u, err := url.Parse(careersURL)
	if err != nil {
		return Unknown
	}
	host := strings.ToLower(u.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return Greenhouse
	case strings.Contains(host, "lever.co"):
		return Lever
	case strings.Contains(host, "myworkdayjobs.com"), strings.Contains(host, "workdayjobs.com"):
		return Workday
	default:
		return Unknown
	}
}

var boardsEUGreenhouse = map[string]bool{
	"boards.greenhouse.io":    true,
	"boards.eu.greenhouse.io": true,
}

// ExtractGreenhouseBoard derives the Greenhouse board id from a careers
// URL using the precedence: (1) query param "for", (2) first path segment
// when the host starts with "boards.", (3) the first host subdomain when
// the host ends with "greenhouse.io" and isn't one of the bare boards
// hosts. Returns "" when none apply.
func ExtractGreenhouseBoard(careersURL string) string {
	u, err := url.Parse(careersURL)
	if err != nil {
		return ""
	}
	if forParam := u.Query().Get("for"); forParam != "" {
		return forParam
	}

	host := strings.ToLower(u.Host)
	if strings.HasPrefix(host, "boards.") {
		if seg := firstPathSegment(u.Path); seg != "" {
			return seg
		}
	}

	if strings.HasSuffix(host, "greenhouse.io") && !boardsEUGreenhouse[host] {
		parts := strings.Split(host, ".")
		if len(parts) > 2 {
			return parts[0]
		}
	}

	return ""
}

// ExtractLeverCompany derives the Lever posting-site slug: the first
// non-empty path segment when the host contains "lever.co".
func ExtractLeverCompany(careersURL string) string {
	u, err := url.Parse(careersURL)
	if err != nil {
		return ""
	}
	if !strings.Contains(strings.ToLower(u.Host), "lever.co") {
		return ""
	}
	return firstPathSegment(u.Path)
}

// WorkdayContext is everything a Workday strategy needs to build its CXS
// JSON RPC endpoint.
type WorkdayContext struct {
	BaseURL string
	Tenant  string
	Site    string
	Locale  string
}

var localePattern = regexp.MustCompile(`^[a-zA-Z]{2}-[a-zA-Z]{2}$`)

// ParseWorkdayContext derives {base_url, tenant, site, locale?} from a
// Workday careers URL. If the path already contains wday/cxs/<tenant>/<site>
// [/<locale>] it is parsed directly; otherwise tenant is derived from the
// first host subdomain and site/locale from the leading path segments (a
// 5-character xx-XX segment is treated as a locale). Returns ok=false when
// no site can be derived.
func ParseWorkdayContext(careersURL string) (WorkdayContext, bool) {
	u, err := url.Parse(careersURL)
	if err != nil {
		return WorkdayContext{}, false
	}
	base := u.Scheme + "://" + u.Host
	segments := splitPath(u.Path)

	if idx := indexOfSequence(segments, []string{"wday", "cxs"}); idx >= 0 && idx+3 < len(segments) {
		tenant := segments[idx+2]
		site := segments[idx+3]
		locale := ""
		if idx+4 < len(segments) {
			locale = segments[idx+4]
		}
		return WorkdayContext{BaseURL: base, Tenant: tenant, Site: site, Locale: locale}, true
	}

	hostParts := strings.Split(strings.ToLower(u.Host), ".")
	if len(hostParts) == 0 || hostParts[0] == "" {
		return WorkdayContext{}, false
	}
	tenant := hostParts[0]

	if len(segments) == 0 {
		return WorkdayContext{}, false
	}

	if localePattern.MatchString(segments[0]) && len(segments) > 1 {
		return WorkdayContext{BaseURL: base, Tenant: tenant, Site: segments[1], Locale: segments[0]}, true
	}

	return WorkdayContext{BaseURL: base, Tenant: tenant, Site: segments[0]}, true
}

func firstPathSegment(path string) string {
	segments := splitPath(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[0]
}

func splitPath(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func indexOfSequence(haystack []string, needle []string) int {
	if len(needle) == 0 || len(haystack) < len(needle) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, n := range needle {
			if haystack[i+j] != n {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
