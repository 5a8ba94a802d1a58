// internal/engine/streamscorer/profiles.go
package streamscorer

import "slices"

// StreamID identifies a stream candidate.
type StreamID string

const (
	StreamPCM      StreamID = "Science_PCM"
	StreamPCB      StreamID = "Science_PCB"
	StreamCommerce StreamID = "Commerce"
	StreamArts     StreamID = "Arts"
	StreamDiploma  StreamID = "Diploma"
)

// DefaultStream wins when no rule added any score.
const DefaultStream = StreamPCM

// Profile is the static reference data for one stream.
type Profile struct {
	Title       string   `json:"title"`
	Subjects    []string `json:"subjects"`
	Careers     []string `json:"careers"`
	Exams       []string `json:"exams"`
	Skills      []string `json:"skills"`
	Personality string   `json:"personality"`
	Resources   []string `json:"resources"`
	SalaryRange string   `json:"salaryRange"`
	Image       string   `json:"image"`
}

func (p Profile) clone() Profile {
	p.Subjects = slices.Clone(p.Subjects)
	p.Careers = slices.Clone(p.Careers)
	p.Exams = slices.Clone(p.Exams)
	p.Skills = slices.Clone(p.Skills)
	p.Resources = slices.Clone(p.Resources)
	return p
}

// streamOrder is the profile table insertion order. Ties on the score board
// resolve to the stream that appears first here.
var streamOrder = []StreamID{StreamPCM, StreamPCB, StreamCommerce, StreamArts, StreamDiploma}

var profiles = map[StreamID]Profile{
	StreamPCM: {
		Title:       "Science (PCM)",
		Subjects:    []string{"Physics", "Chemistry", "Mathematics"},
		Careers:     []string{"Engineering", "Data Science", "Architecture", "Aviation", "Research Scientist", "Robotics"},
		Exams:       []string{"JEE Main", "JEE Advanced", "BITSAT", "VITEEE"},
		Skills:      []string{"Analytical thinking", "Problem-solving", "Mathematical aptitude"},
		Personality: "Logical, Systematic, Innovative",
		Resources:   []string{"Khan Academy (Math)", "Physics Wallah", "Unacademy"},
		SalaryRange: "₹4-15 LPA (starting)",
		Image:       "assets/recommendations/science_pcm.png",
	},
	StreamPCB: {
		Title:       "Science (PCB)",
		Subjects:    []string{"Physics", "Chemistry", "Biology"},
		Careers:     []string{"Medicine", "Biotech", "Pharmacy", "Nursing", "Research", "Physiotherapy"},
		Exams:       []string{"NEET", "AIIMS", "JIPMER", "State Medical Tests"},
		Skills:      []string{"Empathy", "Attention to detail", "Biological understanding"},
		Personality: "Caring, Methodical, Patient",
		Resources:   []string{"NCERT Biology", "Aakash Digital", "Allen Online"},
		SalaryRange: "₹6-25 LPA (starting)",
		Image:       "assets/recommendations/science_pcb.png",
	},
	StreamCommerce: {
		Title:       "Commerce",
		Subjects:    []string{"Accountancy", "Economics", "Business Studies"},
		Careers:     []string{"Chartered Accountant", "Banking", "Finance Manager", "Business Analyst", "Entrepreneur", "Stock Market"},
		Exams:       []string{"CA Foundation", "CPT", "BBA Entrance", "CLAT"},
		Skills:      []string{"Numerical ability", "Business acumen", "Financial literacy"},
		Personality: "Practical, Organized, Strategic",
		Resources:   []string{"CA Foundation Videos", "Investopedia", "Economic Times"},
		SalaryRange: "₹3-12 LPA (starting)",
		Image:       "assets/recommendations/commerce.png",
	},
	StreamArts: {
		Title:       "Humanities / Arts",
		Subjects:    []string{"History", "Political Science", "Psychology", "Sociology"},
		Careers:     []string{"Civil Services", "Journalism", "Psychology", "Teaching", "Social Work", "Content Writing"},
		Exams:       []string{"UPSC", "CLAT", "JNU Entrance", "DU Entrance"},
		Skills:      []string{"Critical thinking", "Communication", "Cultural awareness"},
		Personality: "Creative, Empathetic, Analytical",
		Resources:   []string{"NCERT Social Science", "The Hindu", "Coursera Humanities"},
		SalaryRange: "₹3-10 LPA (starting)",
		Image:       "assets/recommendations/arts.png",
	},
	StreamDiploma: {
		Title:       "Diploma / Polytechnic",
		Subjects:    []string{"Mechanical", "Electrical", "Computer Engineering", "Civil"},
		Careers:     []string{"Junior Engineer", "Technician", "Site Supervisor", "CAD Designer"},
		Exams:       []string{"State Polytechnic Entrance", "Direct Admission"},
		Skills:      []string{"Hands-on expertise", "Technical knowledge", "Practical application"},
		Personality: "Practical, Skilled, Result-oriented",
		Resources:   []string{"ITI courses", "NPTEL", "Skill India"},
		SalaryRange: "₹2-6 LPA (starting)",
		Image:       "assets/recommendations/diploma.png",
	},
}

// Streams returns every stream id in profile order.
func Streams() []StreamID {
	return slices.Clone(streamOrder)
}

// LookupProfile returns a copy of the profile for id.
func LookupProfile(id StreamID) (Profile, bool) {
	p, ok := profiles[id]
	if !ok {
		return Profile{}, false
	}
	return p.clone(), true
}
