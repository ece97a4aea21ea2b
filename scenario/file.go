package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tempograph/interval"
	"github.com/katalvlaran/tempograph/schedule"
)

// Doc is the declarative, named-event form of a Schedule, the shape loaded
// from a YAML scenario file by Load. Names exist only in this layer —
// schedule.Event stays the opaque integer the engine actually works with.
type Doc struct {
	Events   []string        `yaml:"events"`
	Episodes []EpisodeDoc    `yaml:"episodes"`
	Commits  []CommitDoc     `yaml:"commits"`
	Links    []ConstraintDoc `yaml:"constraints"`
}

// EpisodeDoc names the start/end events an episode allocates and its
// admissible duration.
type EpisodeDoc struct {
	Name     string     `yaml:"name"`
	Start    string     `yaml:"start"`
	End      string     `yaml:"end"`
	Duration [2]float64 `yaml:"duration"`
}

// ConstraintDoc names the two endpoints of a directed admissibility
// constraint and its [lo, hi] bound.
type ConstraintDoc struct {
	From     string     `yaml:"from"`
	To       string     `yaml:"to"`
	Interval [2]float64 `yaml:"interval"`
}

// CommitDoc pins a named event to a concrete time.
type CommitDoc struct {
	Event string  `yaml:"event"`
	At    float64 `yaml:"at"`
}

// Load reads a YAML scenario file at path and builds the Schedule it
// describes. The returned map resolves every declared event and episode
// name (start/end event names) back to its schedule.Event, so callers
// (notably cmd/tempograph) can query by the names used in the file.
func Load(path string) (*schedule.Schedule, map[string]schedule.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}

	var doc Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("scenario: parsing %s: %w", path, err)
	}

	return Build(doc)
}

// Build constructs a Schedule from an already-parsed Doc.
func Build(doc Doc) (*schedule.Schedule, map[string]schedule.Event, error) {
	s := schedule.New()
	names := make(map[string]schedule.Event, len(doc.Events)+2*len(doc.Episodes))

	for _, n := range doc.Events {
		if _, dup := names[n]; dup {
			return nil, nil, fmt.Errorf("scenario: duplicate event name %q", n)
		}
		names[n] = s.CreateEvent()
	}

	for _, ep := range doc.Episodes {
		built, err := s.AddEpisode(interval.New(ep.Duration[0], ep.Duration[1]))
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: episode %q: %w", ep.Name, err)
		}
		if ep.Start != "" {
			names[ep.Start] = built.Start()
		}
		if ep.End != "" {
			names[ep.End] = built.End()
		}
	}

	for _, c := range doc.Links {
		u, ok := names[c.From]
		if !ok {
			return nil, nil, fmt.Errorf("scenario: constraint references unknown event %q", c.From)
		}
		v, ok := names[c.To]
		if !ok {
			return nil, nil, fmt.Errorf("scenario: constraint references unknown event %q", c.To)
		}
		if err := s.AddConstraint(u, v, interval.New(c.Interval[0], c.Interval[1])); err != nil {
			return nil, nil, fmt.Errorf("scenario: constraint %s->%s: %w", c.From, c.To, err)
		}
	}

	for _, commit := range doc.Commits {
		e, ok := names[commit.Event]
		if !ok {
			return nil, nil, fmt.Errorf("scenario: commit references unknown event %q", commit.Event)
		}
		if err := s.CommitEvent(e, commit.At); err != nil {
			return nil, nil, fmt.Errorf("scenario: commit %s: %w", commit.Event, err)
		}
	}

	return s, names, nil
}
