// Package terminal - Contact terminal
// The command interpreter behind the site's terminal-style contact
// section. Commands are fixed; unknown input echoes a not-found line.
package terminal

import (
	"fmt"
	"strings"

	"github.com/ziyabeey1-ai/mysite/core/content"
)

// Interpreter executes contact-terminal commands
type Interpreter struct {
	links content.SocialLinks

	// launchWizard is invoked by the wizard command; may be nil
	launchWizard func()
}

// New creates an interpreter over the given contact links
func New(links content.SocialLinks, launchWizard func()) *Interpreter {
	return &Interpreter{links: links, launchWizard: launchWizard}
}

// Banner returns the session opening lines
func (i *Interpreter) Banner() []string {
	return []string{
		"> initializing yzt_protocol v2.4...",
		"> connection established.",
		"> type 'help' for available commands.",
	}
}

// Exec runs one command and returns its output lines. clear reports
// that the caller should reset the scrollback instead of appending.
func (i *Interpreter) Exec(cmd string) (lines []string, clear bool) {
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "help":
		return []string{
			"  > available commands:",
			"  > contact_info  : display contact details",
			"  > wizard        : start project price calculator",
			"  > clear         : clear terminal",
		}, false
	case "contact_info":
		return []string{
			"  > fetching data...",
			"  --------------------------------",
			fmt.Sprintf("  > PHONE:    %s", i.links.Phone),
			fmt.Sprintf("  > EMAIL:    %s", i.links.Email),
			fmt.Sprintf("  > LINKEDIN: %s", i.links.LinkedIn),
			"  --------------------------------",
		}, false
	case "wizard":
		if i.launchWizard != nil {
			i.launchWizard()
		}
		return nil, false
	case "clear":
		return []string{"> terminal cleared."}, true
	default:
		return []string{fmt.Sprintf("  > command not found: %s", strings.TrimSpace(cmd))}, false
	}
}
