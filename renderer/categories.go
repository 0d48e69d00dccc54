package renderer

import (
	"fmt"
	"strings"

	"github.com/hbkim/gagyebu"
)

// Categories renders the registry as a markdown table in settings-file
// order.
func Categories(reg *gagyebu.Registry) string {
	var b strings.Builder
	b.WriteString("| 코드 | 카테고리 | 동의어 |\n")
	b.WriteString("|------|----------|--------|\n")
	for c := range reg.All() {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Code, c.Name, strings.Join(c.Synonyms, ", "))
	}
	return b.String()
}
