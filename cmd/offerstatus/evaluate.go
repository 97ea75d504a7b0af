package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"collective-lifecycle/internal/domain/collective"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"
)

type result struct {
	Kind            string   `json:"kind"`
	EvaluatedAt     string   `json:"evaluatedAt"`
	DisplayedStatus string   `json:"displayedStatus"`
	AllowedActions  []string `json:"allowedActions"`
	IsBookable      bool     `json:"isBookable"`
	IsSoldOut       bool     `json:"isSoldOut"`
	IsEditable      bool     `json:"isEditable"`
	IsArchived      bool     `json:"isArchived"`
}

func cmdEvaluate(out, errOut io.Writer, args []string) int {
	flagSet := flag.NewFlagSet("offerstatus", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	snapshotPath := flagSet.String("snapshot", "", "JSONC snapshot of an offer (with stock and bookings) or a template")
	nowFlag := flagSet.String("now", "", "evaluation instant (RFC3339), defaults to the current time")
	legacy := flagSet.Bool("legacy", false, "resolve statuses without the extended CANCELLED/REIMBURSED/ENDED set")
	outPath := flagSet.String("out", "", "write the read model to this file instead of stdout")
	grace := flagSet.Duration("cancellation-grace", 15*24*time.Hour, "cancellation window of a booking without an event date")
	cutoff := flagSet.Duration("cancellation-cutoff", 15*24*time.Hour, "cancellation cutoff before the event")
	endedWindow := flagSet.Duration("ended-actions-window", 48*time.Hour, "window after the end in which actions stay available")

	if err := flagSet.Parse(args); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		fmt.Fprint(errOut, usage)
		return 1
	}
	if *snapshotPath == "" {
		fmt.Fprintln(errOut, "error: --snapshot is required")
		fmt.Fprint(errOut, usage)
		return 1
	}

	now := time.Now().UTC()
	if *nowFlag != "" {
		t, err := time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			fmt.Fprintln(errOut, "error: --now:", err)
			return 1
		}
		now = t
	}

	data, err := os.ReadFile(*snapshotPath)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	snap, err := parseSnapshot(data)
	if err != nil {
		fmt.Fprintln(errOut, "error:", *snapshotPath+":", err)
		return 1
	}

	engine := collective.NewEngine(collective.Settings{
		NewStatuses:        !*legacy,
		CancellationGrace:  *grace,
		CancellationCutoff: *cutoff,
		EndedActionsWindow: *endedWindow,
	})

	res, err := evaluate(engine, now, snap)
	if err != nil {
		fmt.Fprintln(errOut, "error:", *snapshotPath+":", err)
		return 1
	}

	buf, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	buf = append(buf, '\n')

	if *outPath == "" {
		_, _ = out.Write(buf)
		return 0
	}
	if err := atomic.WriteFile(*outPath, bytes.NewReader(buf)); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	return 0
}

func evaluate(engine *collective.Engine, now time.Time, snap snapshot) (result, error) {
	var model collective.ReadModel

	switch snap.Kind {
	case kindTemplate:
		facts, err := snap.Template.facts()
		if err != nil {
			return result{}, err
		}
		model = engine.Template(facts)
	default:
		offer, err := snap.Offer.facts()
		if err != nil {
			return result{}, err
		}
		var stock *collective.StockFacts
		if snap.Stock != nil {
			s, err := snap.Stock.facts()
			if err != nil {
				return result{}, err
			}
			stock = &s
		}
		model = engine.Offer(now, offer, stock)
	}

	actions := make([]string, len(model.AllowedActions))
	for i, a := range model.AllowedActions {
		actions[i] = a.String()
	}

	return result{
		Kind:            snap.Kind,
		EvaluatedAt:     now.Format(time.RFC3339),
		DisplayedStatus: model.DisplayedStatus.String(),
		AllowedActions:  actions,
		IsBookable:      model.IsBookable,
		IsSoldOut:       model.IsSoldOut,
		IsEditable:      model.IsEditable,
		IsArchived:      model.IsArchived,
	}, nil
}
