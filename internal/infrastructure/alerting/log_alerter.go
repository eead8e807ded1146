package alerting

import (
	"context"
	"log"
	"sort"
	"strings"

	"wrenchgo_payments/internal/usecase/interfaces"
)

// LogAlerter writes operator alerts to the process log. Log-based monitors
// key on the OPS_ALERT prefix; swap in a pager-backed implementation without
// touching callers.

type LogAlerter struct{}

var _ interfaces.IOpsAlerter = (*LogAlerter)(nil)

func NewLogAlerter() *LogAlerter {
	return &LogAlerter{}
}

func (a *LogAlerter) Alert(_ context.Context, code, message string, fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(fields[k])
	}
	log.Printf("OPS_ALERT code=%s message=%q%s", code, message, b.String())
}
