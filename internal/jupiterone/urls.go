package jupiterone

import (
	"fmt"
	"net/url"
	"strings"
)

const defaultSubdomain = "j1"

// Environment extracts the deployment environment from a GraphQL endpoint
// such as https://graphql.dev.jupiterone.io. It defaults to "us".
func Environment(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "us"
	}
	parts := strings.Split(u.Hostname(), ".")
	if len(parts) >= 3 && parts[0] == "graphql" && parts[1] != "" {
		return parts[1]
	}
	return "us"
}

// RuleURL is the web app address of a rule.
func RuleURL(baseURL, ruleID, subdomain string) string {
	if subdomain == "" {
		subdomain = defaultSubdomain
	}
	return fmt.Sprintf("https://%s.apps.%s.jupiterone.io/alerts/rules/%s", subdomain, Environment(baseURL), ruleID)
}

// DashboardURL is the web app address of a dashboard.
func DashboardURL(dashboardID, subdomain string) string {
	if subdomain == "" {
		subdomain = defaultSubdomain
	}
	return fmt.Sprintf("https://%s.apps.us.jupiterone.io/insights/dashboards/%s", subdomain, dashboardID)
}
