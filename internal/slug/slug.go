// Package slug derives company codes from display names.
package slug

import (
	"strings"

	gosimple "github.com/gosimple/slug"
)

// stripped are removed before slugging so they never turn into separators.
var stripped = strings.NewReplacer(
	"*", "", "+", "", "~", "", ".", "", "(", "", ")", "",
	"'", "", `"`, "", "!", "", ":", "", "@", "",
)

// Make returns the lowercase, URL-safe code for name.
func Make(name string) string {
	return gosimple.MakeLang(stripped.Replace(name), "en")
}
