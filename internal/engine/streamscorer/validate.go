// internal/engine/streamscorer/validate.go
package streamscorer

import (
	"errors"
	"fmt"
)

const (
	minExamsForNarrative   = 2
	minCareersForNarrative = 3
)

// ValidateProfiles checks the static tables against each other. A failure is
// a configuration defect and should stop the process at startup.
func ValidateProfiles() error {
	return validateTables(streamOrder, profiles, defaultRuleGroups())
}

func validateTables(order []StreamID, table map[StreamID]Profile, groups []RuleGroup) error {
	var errs []error

	known := make(map[StreamID]bool, len(order))
	for _, id := range order {
		if known[id] {
			errs = append(errs, fmt.Errorf("stream %q listed twice in profile order", id))
		}
		known[id] = true
		p, ok := table[id]
		if !ok {
			errs = append(errs, fmt.Errorf("stream %q has no profile", id))
			continue
		}
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("stream %q has no title", id))
		}
		if len(p.Exams) < minExamsForNarrative {
			errs = append(errs, fmt.Errorf("stream %q needs at least %d exams", id, minExamsForNarrative))
		}
		if len(p.Careers) < minCareersForNarrative {
			errs = append(errs, fmt.Errorf("stream %q needs at least %d careers", id, minCareersForNarrative))
		}
	}
	for id := range table {
		if !known[id] {
			errs = append(errs, fmt.Errorf("profile %q missing from profile order", id))
		}
	}

	if !known[DefaultStream] {
		errs = append(errs, fmt.Errorf("default stream %q has no profile", DefaultStream))
	}

	for _, g := range groups {
		for _, r := range g.Rules {
			if r.Match == nil {
				errs = append(errs, fmt.Errorf("rule %s/%s has no matcher", g.Field, r.Name))
			}
			for _, wt := range r.Weights {
				if !known[wt.Stream] {
					errs = append(errs, fmt.Errorf("rule %s/%s references unknown stream %q", g.Field, r.Name, wt.Stream))
				}
				if wt.Points <= 0 {
					errs = append(errs, fmt.Errorf("rule %s/%s has non-positive weight for %q", g.Field, r.Name, wt.Stream))
				}
			}
		}
	}

	for subj, id := range subjectRoutes {
		if !known[id] {
			errs = append(errs, fmt.Errorf("subject %q routes to unknown stream %q", subj, id))
		}
	}

	fb, ok := narrativeVariants[fallbackVariant]
	if !ok || len(fb.roadmap) == 0 || len(fb.challenges) == 0 {
		errs = append(errs, fmt.Errorf("fallback narrative %q is missing", fallbackVariant))
	}

	return errors.Join(errs...)
}
