// internal/app/policy.go
package app

import "arena-survivors/internal/defs"

// RotatingPolicy answers level-ups without a human: it walks the stat and
// upgrade tables in order.
type RotatingPolicy struct {
	stat    int
	upgrade int
}

func (p *RotatingPolicy) Choose(upgradeScreen bool) defs.Selection {
	if upgradeScreen {
		c := defs.UpgradeChoices[p.upgrade%len(defs.UpgradeChoices)]
		p.upgrade++
		return defs.PickUpgrade(c)
	}
	c := defs.StatChoices[p.stat%len(defs.StatChoices)]
	p.stat++
	return defs.PickStat(c)
}

// RunHeadless ticks g until the player dies or maxTicks pass, answering
// every level-up with policy.
func RunHeadless(g *Game, policy *RotatingPolicy, maxTicks int, dt float64) Summary {
	for i := 0; i < maxTicks && !g.IsOver(); i++ {
		for {
			pending, ok := g.PendingLevelUp()
			if !ok || g.IsOver() {
				break
			}
			g.ResumeSimulation(policy.Choose(pending.IsUpgradeScreen))
		}
		g.Update(dt)
	}
	return g.Summary()
}
