package scene

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteSummary prints a plain-text inventory of the system, one row per
// body, for headless use.
func WriteSummary(w io.Writer, s *System) {
	fmt.Fprintf(w, "System %s (seed %d)\n", s.Name, s.Seed)
	fmt.Fprintf(w, "Sun radius %.1f, %d planets\n\n", s.SunRadius, len(s.Planets))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BODY\tKIND\tRADIUS\tORBIT\tPERIOD\tRING\tMOONS")
	for _, p := range s.Planets {
		ring := "-"
		if p.Ring {
			ring = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.0f\t%.0fs\t%s\t%d\n",
			p.Name, p.Kind, p.Radius, p.OrbitRadius, p.OrbitPeriod, ring, len(p.Moons))
		for _, m := range p.Moons {
			fmt.Fprintf(tw, "  %s\t%s\t%.1f\t%.0f\t%.0fs\t-\t\n",
				m.Name, m.Kind, m.Radius, m.OrbitRadius, m.OrbitPeriod)
		}
	}
	tw.Flush()
}
