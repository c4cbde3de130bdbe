package simulator

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/netroute/core"
)

// Render writes one line per computer: its outgoing routes followed by the
// transfer counters, e.g.
//
//	Computer 0 -> 1(4ms) 2(10ms) | Sent: 0 | Received: 0
//
// The table is taken from a single snapshot of the network.
func (s *Simulator) Render(w io.Writer) error {
	var b strings.Builder

	err := s.net.View(func(t core.Topology) error {
		if t.NodeCount() == 0 {
			b.WriteString("Network is empty\n")
			return nil
		}
		for id := 0; id < t.NodeCount(); id++ {
			fmt.Fprintf(&b, "Computer %d ->", id)
			for _, r := range t.EdgesOf(id) {
				fmt.Fprintf(&b, " %d(%dms)", r.To, r.Weight)
			}
			st := t.StatsOf(id)
			fmt.Fprintf(&b, " | Sent: %d | Received: %d\n", st.Sent, st.Received)
		}

		return nil
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, b.String())
	return err
}
