// Package mail hands composed proposal messages to the mail client.
// The core only renders the message; dispatch happens out of band and
// its failure is unobservable to the estimator.
package mail

import (
	"net/url"
	"strings"

	"github.com/ziyabeey1-ai/mysite/core/proposal"
)

// escape percent-encodes a mailto component. mailto expects %20 for
// spaces, not the '+' that query encoding produces.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MailtoURL builds the mail-client invocation URL for a composed
// message
func MailtoURL(to string, msg proposal.Message) string {
	return "mailto:" + to + "?subject=" + escape(msg.Subject) + "&body=" + escape(msg.Body)
}
