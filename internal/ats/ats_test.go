package ats

import "testing"

func TestDetectIsInjective(t *testing.T) {
	cases := map[string]Kind{
		"https://boards.greenhouse.io/stripe":                Greenhouse,
		"https://jobs.lever.co/acme":                         Lever,
		"https://acme.wd1.myworkdayjobs.com/en-US/Careers":   Workday,
		"https://example.com/careers":                        Unknown,
	}
	for url, want := range cases {
		if got := Detect(url); got != want {
			t.Errorf("Detect(%q) = %q, want %q", url, got, want)
		}
	}
}

func TestExtractGreenhouseBoardPrecedence(t *testing.T) {
	if got := ExtractGreenhouseBoard("https://boards.greenhouse.io/embed/job_board?for=airbnb"); got != "airbnb" {
		t.Errorf("got %q", got)
	}
	if got := ExtractGreenhouseBoard("https://boards.greenhouse.io/stripe"); got != "stripe" {
		t.Errorf("got %q", got)
	}
	if got := ExtractGreenhouseBoard("https://acme.greenhouse.io/"); got != "acme" {
		t.Errorf("got %q", got)
	}
	if got := ExtractGreenhouseBoard("https://boards.greenhouse.io/"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestExtractLeverCompany(t *testing.T) {
	if got := ExtractLeverCompany("https://jobs.lever.co/acme/posting"); got != "acme" {
		t.Errorf("got %q", got)
	}
	if got := ExtractLeverCompany("https://example.com/jobs"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestParseWorkdayContextFromSubdomainAndLocale(t *testing.T) {
	ctx, ok := ParseWorkdayContext("https://company.wd1.myworkdayjobs.com/en-US/Careers")
	if !ok {
		t.Fatal("expected ok")
	}
	if ctx.Tenant != "company" || ctx.Site != "Careers" || ctx.Locale != "en-US" {
		t.Errorf("unexpected context: %+v", ctx)
	}
}

func TestParseWorkdayContextFromCXSPath(t *testing.T) {
	ctx, ok := ParseWorkdayContext("https://company.wd1.myworkdayjobs.com/wday/cxs/company/Careers/en-US/jobs")
	if !ok {
		t.Fatal("expected ok")
	}
	if ctx.Tenant != "company" || ctx.Site != "Careers" || ctx.Locale != "en-US" {
		t.Errorf("unexpected context: %+v", ctx)
	}
}

func TestParseWorkdayContextNoSite(t *testing.T) {
	_, ok := ParseWorkdayContext("https://company.wd1.myworkdayjobs.com/")
	if ok {
		t.Fatal("expected not ok when no site can be derived")
	}
}
