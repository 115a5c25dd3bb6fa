package tracking

import "strings"

// Platform labels written to platform_source
const (
	PlatformHomepage = "homepage"
	PlatformMuadee   = "muadee_page"
	PlatformTnex     = "tnex_page"
	PlatformFE       = "fe_page"
	PlatformCUB      = "cub_page"
	PlatformWeb      = "web"
)

var pathPlatforms = []struct {
	fragment string
	platform string
}{
	{"/the-muadee", PlatformMuadee},
	{"/vay-tnex", PlatformTnex},
	{"/vay-fe", PlatformFE},
	{"/vay-cub", PlatformCUB},
}

// PlatformFromPath derives the platform label from the page path the event happened on
func PlatformFromPath(path string) string {
	for _, p := range pathPlatforms {
		if strings.Contains(path, p.fragment) {
			return p.platform
		}
	}
	if path == "/" {
		return PlatformHomepage
	}
	return PlatformWeb
}

// NavigationPlatform is the platform label of a menu-navigation click
func NavigationPlatform(navigationType string) string {
	return "navigation_" + navigationType
}
