package labelflow

import (
	"fmt"
	"io"
	"sort"
)

// TransitionInfo describes one row of the transition table.
type TransitionInfo struct {
	From   StateKind
	Event  EventKind
	To     StateKind
	Effect EffectKind
}

// Transitions returns every row of the transition table, ordered by source
// state (in AllStateKinds order) and then by event name.
func Transitions() []TransitionInfo {
	order := make(map[StateKind]int, len(AllStateKinds))
	for i, k := range AllStateKinds {
		order[k] = i
	}

	rows := make([]TransitionInfo, 0, 64)
	for from, events := range defaultTable {
		for event, tr := range events {
			rows = append(rows, TransitionInfo{From: from, Event: event, To: tr.to, Effect: tr.effect})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].From != rows[j].From {
			return order[rows[i].From] < order[rows[j].From]
		}
		return rows[i].Event < rows[j].Event
	})
	return rows
}

// RenderTable writes a human-readable view of the transition table:
//
//	[Idle]
//	    --FlowStarted--> DataLoading / LoadData
func RenderTable(w io.Writer) error {
	var current StateKind
	for _, row := range Transitions() {
		if row.From != current {
			current = row.From
			if _, err := fmt.Fprintf(w, "[%s]\n", current); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "    --%s--> %s / %s\n", row.Event, row.To, row.Effect); err != nil {
			return err
		}
	}
	return nil
}
