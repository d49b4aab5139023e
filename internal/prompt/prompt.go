// Package prompt implements the interactive site type menu read from stdin.
package prompt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sitegen-labs/sitegen/internal/branding"
	"github.com/sitegen-labs/sitegen/internal/site"
)

// SelectSiteType prints the numbered site type menu to w and reads one line
// from r. Out-of-range or non-numeric input returns an error wrapping
// site.ErrInvalidChoice.
func SelectSiteType(r io.Reader, w io.Writer) (site.SiteType, error) {
	reader := bufio.NewReader(r)
	types := site.Types()

	fmt.Fprintf(w, "%s\n", branding.DisplayName())
	fmt.Fprintf(w, "\nChoose website type:\n")
	for i, t := range types {
		fmt.Fprintf(w, "%d. %s\n", i+1, t.DisplayName())
	}
	fmt.Fprintf(w, "\nEnter number (1-%d): ", len(types))

	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	return site.ParseChoice(line)
}
