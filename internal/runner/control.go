package runner

import (
	"strings"

	"github.com/scan-io-git/envlint/internal/envfile"
)

const controlPrefix = "envlint:"

// control is a parsed "# envlint:off Name, Name" or "# envlint:on" comment.
// An empty check list applies to every check.
type control struct {
	enable bool
	checks []string
}

// parseControl recognises control comments; ok is false for any other line.
func parseControl(line envfile.LineEntry) (control, bool) {
	if !line.IsComment() {
		return control{}, false
	}
	body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line.Raw), "#"))
	if !strings.HasPrefix(body, controlPrefix) {
		return control{}, false
	}

	fields := strings.Fields(strings.ReplaceAll(strings.TrimPrefix(body, controlPrefix), ",", " "))
	if len(fields) == 0 {
		return control{}, false
	}

	var c control
	switch fields[0] {
	case "on":
		c.enable = true
	case "off":
		c.enable = false
	default:
		return control{}, false
	}
	c.checks = fields[1:]
	return c, true
}

// disabledSet tracks which checks are switched off while walking a file.
type disabledSet struct {
	all    bool
	checks map[string]struct{}
}

func newDisabledSet() *disabledSet {
	return &disabledSet{checks: make(map[string]struct{})}
}

func (d *disabledSet) apply(c control) {
	if len(c.checks) == 0 {
		d.all = !c.enable
		if c.enable {
			d.checks = make(map[string]struct{})
		}
		return
	}
	for _, name := range c.checks {
		if c.enable {
			delete(d.checks, name)
		} else {
			d.checks[name] = struct{}{}
		}
	}
}

func (d *disabledSet) has(name string) bool {
	if d.all {
		return true
	}
	_, ok := d.checks[name]
	return ok
}
