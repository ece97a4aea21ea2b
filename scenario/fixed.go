package scenario

import (
	"github.com/katalvlaran/tempograph/interval"
	"github.com/katalvlaran/tempograph/schedule"
)

// Chain builds a schedule of n episodes back to back, episode i's end
// chained to episode i+1's start with a zero-width constraint. n must be at
// least 1. Each episode's duration is duration.
func Chain(n int, duration interval.Interval) (*schedule.Schedule, []schedule.Episode, error) {
	s := schedule.New()
	episodes := make([]schedule.Episode, 0, n)

	var prev *schedule.Episode
	for i := 0; i < n; i++ {
		ep, err := s.AddEpisode(duration)
		if err != nil {
			return nil, nil, err
		}
		episodes = append(episodes, ep)
		if prev != nil {
			if err := s.AddConstraint(prev.End(), ep.Start()); err != nil {
				return nil, nil, err
			}
		}
		prev = &episodes[len(episodes)-1]
	}

	return s, episodes, nil
}

// Diamond builds the four-event fork/join topology from the MIT 16.412
// L02 worked example: two events A and D bracket two independent routes
// through B and C.
//
//	A --[1,10]--> B --[1,1]--> D
//	A --[0,9]--> C --[2,2]--> D
//
// It returns the Schedule and the four events in creation order A, B, C, D.
func Diamond() (*schedule.Schedule, [4]schedule.Event, error) {
	s := schedule.New()
	a := s.CreateEvent()
	b := s.CreateEvent()
	c := s.CreateEvent()
	d := s.CreateEvent()

	if err := s.AddConstraint(a, b, interval.New(1, 10)); err != nil {
		return nil, [4]schedule.Event{}, err
	}
	if err := s.AddConstraint(b, d, interval.New(1, 1)); err != nil {
		return nil, [4]schedule.Event{}, err
	}
	if err := s.AddConstraint(a, c, interval.New(0, 9)); err != nil {
		return nil, [4]schedule.Event{}, err
	}
	if err := s.AddConstraint(c, d, interval.New(2, 2)); err != nil {
		return nil, [4]schedule.Event{}, err
	}

	return s, [4]schedule.Event{a, b, c, d}, nil
}
