package session

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Step is one scripted action.
type Step struct {
	Action Action
	Input  string
}

// UnmarshalYAML accepts {action: log_trash, input: "3"}.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Action string `yaml:"action"`
		Input  string `yaml:"input"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	a, err := ParseAction(raw.Action)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	s.Action = a
	s.Input = raw.Input
	return nil
}

// Script is a headless sequence of actions for one participant.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// ExampleScript collects 3 kg, doses 2 kg of additive and shows the impact.
func ExampleScript(name string) *Script {
	return &Script{
		Name: name,
		Steps: []Step{
			{Action: ActionLogTrash, Input: "3"},
			{Action: ActionAddAdditive, Input: "2"},
			{Action: ActionViewImpact},
			{Action: ActionSetLocation, Input: "La Jolla Beach"},
			{Action: ActionAddFriend, Input: "1"},
			{Action: ActionAddFriend, Input: "1"},
			{Action: ActionViewFriends},
			{Action: ActionPostUpdate, Input: "Cleaned up the tide pools today!"},
			{Action: ActionViewFeed},
		},
	}
}

// LoadScript parses a YAML script.
func LoadScript(r io.Reader) (*Script, error) {
	var sc Script
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty script")
		}
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &sc, nil
}

// Result is the outcome of one step.
type Result struct {
	Step   Step
	Title  string
	Output string
	Err    error
}

// Run starts the session with the script's name (unless already started)
// and executes every step. Step errors are reported in the results and do
// not stop the run; ErrNoInput steps are skipped silently. Exit ends the run.
func (sc *Script) Run(s *Session) ([]Result, error) {
	if !s.Started() {
		if err := s.Start(sc.Name); err != nil {
			return nil, fmt.Errorf("start session: %w", err)
		}
	}

	results := make([]Result, 0, len(sc.Steps))
	for _, step := range sc.Steps {
		if step.Action == ActionExit {
			break
		}
		out, err := s.Do(step.Action, step.Input)
		if errors.Is(err, ErrNoInput) {
			continue
		}
		results = append(results, Result{
			Step:   step,
			Title:  step.Action.NoticeTitle(),
			Output: out,
			Err:    err,
		})
	}
	return results, nil
}
