package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KyleBlankRollins/meowzer-sub000/agent"
	"github.com/KyleBlankRollins/meowzer-sub000/behavior"
	"github.com/KyleBlankRollins/meowzer-sub000/brain"
	"github.com/KyleBlankRollins/meowzer-sub000/config"
	"github.com/KyleBlankRollins/meowzer-sub000/geo"
	"github.com/KyleBlankRollins/meowzer-sub000/interaction"
	"github.com/KyleBlankRollins/meowzer-sub000/motion"
	"github.com/KyleBlankRollins/meowzer-sub000/persistence"
	"github.com/KyleBlankRollins/meowzer-sub000/personality"
	"github.com/KyleBlankRollins/meowzer-sub000/telemetry"
)

func newRunCmd() *cobra.Command {
	var (
		count      int
		duration   time.Duration
		names      []string
		configPath string
		outputDir  string
		boundary   float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Spawn a colony of cat agents and run the simulation for a fixed duration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColony(colonyOptions{
				count:       count,
				duration:    duration,
				presetNames: names,
				configPath:  configPath,
				outputDir:   outputDir,
				boundary:    boundary,
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of agents to spawn")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 10*time.Second, "how long to run the simulation")
	cmd.Flags().StringSliceVar(&names, "personality", nil, "personality preset per agent (cycles if fewer than --count); one of lazy, playful, curious, aloof, energetic, balanced")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config overlay")
	cmd.Flags().StringVar(&outputDir, "output", "", "directory to write decisions.csv into (telemetry disabled if empty)")
	cmd.Flags().Float64Var(&boundary, "boundary", 800, "half-width/height in pixels of the square world boundary")

	return cmd
}

type colonyOptions struct {
	count       int
	duration    time.Duration
	presetNames []string
	configPath  string
	outputDir   string
	boundary    float64
}

func runColony(opts colonyOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	recorder, err := telemetry.NewDecisionRecorder(opts.outputDir)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer recorder.Close()

	registry := interaction.NewRegistry()
	store := persistence.NewMemory()
	roster := agent.NewRegistry()
	lib := behavior.NewLibrary(time.Now().UnixNano())
	bounds := geo.NewBoundaries(-opts.boundary, opts.boundary, -opts.boundary, opts.boundary)

	presets := resolvePresets(opts.presetNames, opts.count)

	var unsubs []func()
	for i := 0; i < opts.count; i++ {
		id := uuid.NewString()
		pos := geo.Position{X: float64(i*40) - opts.boundary/2, Y: 0}
		motionCtrl := motion.NewSimulated(id, pos, bounds)

		b, err := brain.New(motionCtrl, lib, brain.Options{
			Personality: presets[i],
			Environment: registry,
			Config:      cfg,
		})
		if err != nil {
			return fmt.Errorf("creating brain for agent %d: %w", i, err)
		}

		a := agent.New(id, fmt.Sprintf("seed-%d", i), motionCtrl, b, registry)
		a.SetName(fmt.Sprintf("cat-%d", i+1))
		roster.Add(a)

		agentID := id
		unsub := b.Events.DecisionMade.Subscribe(func(e brain.DecisionMadeEvent) {
			_ = recorder.Record(telemetry.DecisionRecord{
				Timestamp:    time.Now(),
				AgentID:      agentID,
				Chosen:       string(e.Chosen),
				Rest:         e.Motivation.Rest,
				Stimulation:  e.Motivation.Stimulation,
				Exploration:  e.Motivation.Exploration,
				ChosenWeight: e.Weights[e.Chosen],
			})
		})
		unsubs = append(unsubs, unsub)

		if err := a.Resume(); err != nil {
			return fmt.Errorf("starting agent %d: %w", i, err)
		}
		_ = store.Save(a.ToBlob())
	}

	telemetry.Logf("spawned %d agents, running for %s", opts.count, opts.duration)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	select {
	case <-time.After(opts.duration):
	case <-ctx.Done():
		telemetry.Logf("interrupted, shutting down early")
	}

	for _, u := range unsubs {
		u()
	}
	printRoster(roster)
	roster.Clear()

	return nil
}

func resolvePresets(names []string, count int) []personality.Name {
	out := make([]personality.Name, count)
	if len(names) == 0 {
		fallback := []personality.Name{personality.Balanced}
		for i := range out {
			out[i] = fallback[i%len(fallback)]
		}
		return out
	}
	for i := range out {
		out[i] = personality.Name(names[i%len(names)])
	}
	return out
}

func printRoster(roster *agent.Registry) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "ID", "State", "Position"})
	for _, a := range roster.GetAll() {
		pos := a.Motion().Position()
		table.Append([]string{
			a.Name(),
			a.ID(),
			string(a.Motion().State()),
			fmt.Sprintf("(%.0f, %.0f)", pos.X, pos.Y),
		})
	}
	table.Render()
}
