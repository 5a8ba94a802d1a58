// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

var validStatuses = map[string]bool{
	"planned":     true,
	"in-progress": true,
	"completed":   true,
	"verified":    true,
}

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return &reg, nil
}

// Lookup returns the activity registered for taskType.
func (r *ActivityRegistry) Lookup(taskType string) (Activity, bool) {
	for _, a := range r.Activities {
		if a.TaskType == taskType {
			return a, true
		}
	}
	return Activity{}, false
}

// Validate reports every problem found, one per line.
func (r *ActivityRegistry) Validate() error {
	var problems []string
	ids := map[string]bool{}
	types := map[string]bool{}

	for i, a := range r.Activities {
		ref := a.ID
		if ref == "" {
			ref = fmt.Sprintf("#%d", i)
			problems = append(problems, fmt.Sprintf("%s: id is required", ref))
		}
		if ids[a.ID] && a.ID != "" {
			problems = append(problems, fmt.Sprintf("%s: duplicate id", ref))
		}
		ids[a.ID] = true

		if a.TaskType == "" {
			problems = append(problems, fmt.Sprintf("%s: taskType is required", ref))
		} else if types[a.TaskType] {
			problems = append(problems, fmt.Sprintf("%s: taskType %q registered twice", ref, a.TaskType))
		}
		types[a.TaskType] = true

		if a.Status != "" && !validStatuses[a.Status] {
			problems = append(problems, fmt.Sprintf("%s: unknown status %q", ref, a.Status))
		}
		if a.Timeout != "" {
			if _, err := time.ParseDuration(a.Timeout); err != nil {
				problems = append(problems, fmt.Sprintf("%s: invalid timeout %q", ref, a.Timeout))
			}
		}
		if a.Retries < 0 {
			problems = append(problems, fmt.Sprintf("%s: retries must not be negative", ref))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("registry has %d problem(s):\n%s", len(problems), strings.Join(problems, "\n"))
	}
	return nil
}

// Missing returns the task types that have no registry entry.
func (r *ActivityRegistry) Missing(taskTypes ...string) []string {
	var out []string
	for _, t := range taskTypes {
		if _, ok := r.Lookup(t); !ok {
			out = append(out, t)
		}
	}
	return out
}
