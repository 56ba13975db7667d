package domain

import "fmt"

// TrackProgress tracks which projects of a track are done and which one
// the learner is currently working on.
type TrackProgress struct {
	Completed map[string]bool `json:"completed_projects"`
	Current   *string         `json:"current_project,omitempty"`
}

// Track is the ordered list of projects recommended for a confirmed goal.
type Track struct {
	ID       string        `json:"id"`
	Goal     Goal          `json:"goal"`
	Projects []Project     `json:"projects"`
	Progress TrackProgress `json:"progress"`
}

// NewTrack builds a track with empty progress.
func NewTrack(id string, goal Goal, projects []Project) *Track {
	return &Track{
		ID:       id,
		Goal:     goal,
		Projects: projects,
		Progress: TrackProgress{Completed: map[string]bool{}},
	}
}

// Project returns the project with the given id.
func (t *Track) Project(id string) (Project, error) {
	for _, p := range t.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("project %q in track %s: %w", id, DisplayID(t.ID), ErrNotFound)
}

// Start marks the project as the one currently being worked on.
func (t *Track) Start(projectID string) error {
	if _, err := t.Project(projectID); err != nil {
		return err
	}
	if t.Progress.Completed[projectID] {
		return fmt.Errorf("project %q is already completed", projectID)
	}
	id := projectID
	t.Progress.Current = &id
	return nil
}

// Complete records the project as done. Completing an already completed
// project is a no-op.
func (t *Track) Complete(projectID string) error {
	if _, err := t.Project(projectID); err != nil {
		return err
	}
	if t.Progress.Completed == nil {
		t.Progress.Completed = map[string]bool{}
	}
	t.Progress.Completed[projectID] = true
	if t.Progress.Current != nil && *t.Progress.Current == projectID {
		t.Progress.Current = nil
	}
	return nil
}

// PercentComplete returns the completed share of the track in [0,1].
func (t *Track) PercentComplete() float64 {
	if len(t.Projects) == 0 {
		return 0
	}
	done := 0
	for _, p := range t.Projects {
		if t.Progress.Completed[p.ID] {
			done++
		}
	}
	return float64(done) / float64(len(t.Projects))
}

// TotalDuration sums the durations of all projects in the track.
func (t *Track) TotalDuration() Duration {
	ds := make([]Duration, 0, len(t.Projects))
	for _, p := range t.Projects {
		ds = append(ds, p.Duration)
	}
	return SumDuration(ds...)
}
