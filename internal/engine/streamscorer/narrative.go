// internal/engine/streamscorer/narrative.go
package streamscorer

import (
	"fmt"
	"strings"
)

// DetailedAnalysis is the templated narrative attached to a recommendation.
type DetailedAnalysis struct {
	Summary        string   `json:"summary"`
	WhyRecommended []string `json:"whyRecommended"`
	CareerRoadmap  []string `json:"careerRoadmap"`
	NextSteps      []string `json:"nextSteps"`
	Challenges     []string `json:"challenges"`
	Opportunities  []string `json:"opportunities"`
}

type narrativeVariant struct {
	roadmap    []string
	challenges []string
}

var narrativeVariants = map[StreamID]narrativeVariant{
	StreamPCM: {
		roadmap: []string{
			"Year 1-2: Focus on JEE preparation, build strong foundation in PCM",
			"Year 3-4: Engineering college, participate in hackathons and projects",
			"Year 5+: Internships, specialization, job placements or higher studies",
		},
		challenges: []string{
			"High competition in engineering entrance exams",
			"Requires strong mathematical and analytical skills",
			"Long study hours and intensive preparation needed",
		},
	},
	StreamPCB: {
		roadmap: []string{
			"Year 1: Intensive NEET preparation, master Biology concepts",
			"Year 2-6: Medical college (MBBS) or other health programs",
			"Year 7+: Specialization, practice, or research opportunities",
		},
		challenges: []string{
			"Extremely competitive medical entrance (NEET)",
			"Long duration of medical education (5.5+ years)",
			"High emotional resilience required in healthcare",
		},
	},
	StreamCommerce: {
		roadmap: []string{
			"Year 1-2: Build accounting and economics foundation",
			"Year 3-5: CA/BBA/B.Com with internships in firms",
			"Year 6+: Professional certification, corporate roles, or entrepreneurship",
		},
		challenges: []string{
			"CA exams have low pass rates, require dedication",
			"Rapidly changing business environment",
			"Need to stay updated with financial regulations",
		},
	},
	StreamArts: {
		roadmap: []string{
			"Year 1-2: Develop writing, research, and analytical skills",
			"Year 3-5: BA/BBA with internships in media, NGOs, or government",
			"Year 6+: Masters, UPSC preparation, or specialized roles",
		},
		challenges: []string{
			"Perception issues about career prospects in arts",
			"Requires excellent communication and research skills",
			"UPSC and similar exams are highly competitive",
		},
	},
}

// fallbackVariant covers every stream without its own narrative, Diploma included.
const fallbackVariant = StreamArts

func variantFor(id StreamID) narrativeVariant {
	if v, ok := narrativeVariants[id]; ok {
		return v
	}
	return narrativeVariants[fallbackVariant]
}

// streamReason is checked in order; the first match supplies the first reason.
type streamReason struct {
	stream StreamID
	match  Matcher // over fav_subject; nil matches anything
	text   string
}

var streamReasons = []streamReason{
	{StreamPCM, containsAny("Math"), "Your love for Mathematics aligns perfectly with engineering and technology careers"},
	{StreamPCB, containsAny("Biology"), "Your interest in Biology opens doors to medical and life sciences"},
	{StreamCommerce, containsAny("Commerce"), "Your business aptitude makes you ideal for commerce and finance"},
	{StreamArts, nil, "Your creative and analytical thinking suits humanities perfectly"},
}

var workStyleReasons = []struct {
	match Matcher
	text  string
}{
	{containsAny("Problem-solving"), "Your problem-solving nature is crucial for technical fields"},
	{containsAny("Helping"), "Your people-oriented approach fits healthcare and social sectors"},
}

func whyRecommended(answers AnswerSet, id StreamID) []string {
	reasons := []string{}

	fav := answers.Get(FieldFavSubject)
	for _, r := range streamReasons {
		if r.stream != id {
			continue
		}
		if r.match == nil || r.match(fav) {
			reasons = append(reasons, r.text)
		}
		break
	}

	if ws := answers.Get(FieldWorkStyle); ws != "" {
		for _, r := range workStyleReasons {
			if r.match(ws) {
				reasons = append(reasons, r.text)
				break
			}
		}
	}
	return reasons
}

func buildAnalysis(answers AnswerSet, id StreamID, p Profile) DetailedAnalysis {
	v := variantFor(id)
	return DetailedAnalysis{
		Summary:        fmt.Sprintf("Based on your responses, you show strong alignment with %s.", p.Title),
		WhyRecommended: whyRecommended(answers, id),
		CareerRoadmap:  append([]string(nil), v.roadmap...),
		NextSteps: []string{
			fmt.Sprintf("Research top colleges offering %s programs", p.Title),
			fmt.Sprintf("Start preparing for %s", strings.Join(head(p.Exams, 2), ", ")),
			"Connect with professionals in your field of interest through LinkedIn",
			"Join relevant online communities and forums",
		},
		Challenges: append([]string(nil), v.challenges...),
		Opportunities: []string{
			fmt.Sprintf("Growing demand in %s", strings.Join(head(p.Careers, 3), ", ")),
			"International career prospects available",
			"Option for entrepreneurship and innovation",
			"Continuous learning and skill development opportunities",
		},
	}
}

func head(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
