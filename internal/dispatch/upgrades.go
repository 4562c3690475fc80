package dispatch

import (
	"context"
	"fmt"

	"github.com/conn-castle/weget/internal/messages"
	"github.com/conn-castle/weget/internal/upgrades"
)

// pendingUpgrades queries the backend for available upgrades.
// A failed query is reported as a warning and treated as an empty list.
func (d *Dispatcher) pendingUpgrades(ctx context.Context) []string {
	code, report, err := d.Backend.Output(ctx, d.UpgradeListArgs...)
	if err != nil {
		d.warn(fmt.Sprintf(messages.DispatchUpgradeQueryFailedFmt, err))
		return nil
	}
	if code != 0 {
		d.warn(fmt.Sprintf(messages.DispatchUpgradeQueryExitFmt, code))
		return nil
	}
	return upgrades.Parse(report)
}
