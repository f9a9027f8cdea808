// whatsapp-analytics - Chat Export Statistics Tool
//
// whatsapp-analytics reconstructs discrete messages from a plain-text
// WhatsApp chat export and computes descriptive statistics over them.
package main

import (
	"os"

	"github.com/jSchiffart/whatsapp-analytics/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
