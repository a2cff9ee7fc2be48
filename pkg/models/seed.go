package models

// DefaultCompanies is the curated starter list the Repository is seeded
// with on first run if no companies are yet persisted.
var DefaultCompanies = []Company{
	*NewCompany("stripe", "Stripe", "https://stripe.com/jobs"),
	*NewCompany("airbnb", "Airbnb", "https://careers.airbnb.com/"),
	*NewCompany("datadog", "Datadog", "https://careers.datadoghq.com/"),
	*NewCompany("atlassian", "Atlassian", "https://www.atlassian.com/company/careers"),
	*NewCompany("cloudflare", "Cloudflare", "https://www.cloudflare.com/careers/jobs/"),
	*NewCompany("gitlab", "GitLab", "https://about.gitlab.com/jobs/all-jobs/"),
	*NewCompany("hashicorp", "HashiCorp", "https://www.hashicorp.com/careers"),
	*NewCompany("workday", "Workday", "https://workday.wd5.myworkdayjobs.com/Workday"),
	*NewCompany("servicenow", "ServiceNow", "https://careers.servicenow.com/"),
	*NewCompany("snowflake", "Snowflake", "https://careers.snowflake.com/"),
}
