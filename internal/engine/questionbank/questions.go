// internal/engine/questionbank/questions.go
package questionbank

// Mode selects a questionnaire variant.
type Mode string

const (
	ModeSSC Mode = "SSC"
	ModeHSC Mode = "HSC"
)

// Question types.
const (
	TypeText      = "text"
	TypeChoice    = "choice"
	TypeAgeChoice = "age_choice"
)

// Question is one questionnaire prompt. MinLength applies to the trimmed
// answer of free-text questions; choice questions only accept their options.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Type         string   `json:"type"`
	Options      []string `json:"options,omitempty"`
	MinLength    int      `json:"minLength,omitempty"`
	ErrorMessage string   `json:"error,omitempty"`
}

var sscQuestions = []Question{
	{ID: "name", Text: "Hey! What's your name? 😊", Type: TypeText, MinLength: 2, ErrorMessage: "Name must be at least 2 characters"},
	{ID: "age", Text: "How old are you?", Type: TypeAgeChoice, Options: []string{"13", "14", "15", "16", "17", "18"}, ErrorMessage: "Please select your age"},
	{ID: "location", Text: "Which city/town are you from? 🌍", Type: TypeText, MinLength: 1, ErrorMessage: "Please enter your location"},
	{ID: "diploma_interest", Text: "Would you like hands-on, job-ready courses after 10th?", Type: TypeChoice, Options: []string{"Yes — Diploma/Polytechnic", "No — I'll continue to 11th/12th"}},
	{ID: "fav_subject", Text: "Which subject makes you lose track of time because you enjoy it?", Type: TypeChoice, Options: []string{"Mathematics", "Physics/Chemistry", "Biology", "Computer/CS", "Commerce/Accounts", "History/Geography", "Languages", "Arts/Music"}},
	{ID: "hobby", Text: "What do you enjoy doing in your free time?", Type: TypeChoice, Options: []string{"Solving puzzles/coding", "Reading/writing", "Sports/fitness", "Drawing/designing", "Building/fixing things", "Helping people/volunteering"}},
	{ID: "dream_job", Text: "If you could do anything for a career, what would it be?", Type: TypeText, MinLength: 1, ErrorMessage: "Please share your dream job"},
	{ID: "strength", Text: "What are you naturally good at?", Type: TypeChoice, Options: []string{"Numbers & logic", "Creative thinking", "Communication", "Hands-on work", "Problem-solving", "Leadership"}},
	{ID: "study_style", Text: "How do you prefer to learn?", Type: TypeChoice, Options: []string{"Reading textbooks", "Watching videos", "Doing practical work", "Group discussions", "Self-practice"}},
	{ID: "career_priority", Text: "What matters most to you in a career?", Type: TypeChoice, Options: []string{"High salary", "Job security", "Creativity & innovation", "Helping society", "Work-life balance", "Fame & recognition"}},
	{ID: "tech_comfort", Text: "How comfortable are you with technology & computers?", Type: TypeChoice, Options: []string{"Very comfortable — I love tech!", "Somewhat comfortable", "Not very comfortable", "I prefer hands-on/non-tech work"}},
	{ID: "work_preference", Text: "Would you rather work:", Type: TypeChoice, Options: []string{"Indoors (office/lab)", "Outdoors (field/travel)", "Mix of both", "From home"}},
	{ID: "math_feeling", Text: "How do you feel about mathematics?", Type: TypeChoice, Options: []string{"Love it! It's my favorite", "It's okay, I can manage", "Not my strong suit", "I struggle with it"}},
	{ID: "future_vision", Text: "Where do you see yourself in 10 years?", Type: TypeText, MinLength: 1, ErrorMessage: "Please share your vision"},
}

var hscQuestions = []Question{
	{ID: "name", Text: "What's your name? 😊", Type: TypeText, MinLength: 2, ErrorMessage: "Name must be at least 2 characters"},
	{ID: "age", Text: "How old are you?", Type: TypeAgeChoice, Options: []string{"16", "17", "18", "19", "20"}, ErrorMessage: "Please select your age"},
	{ID: "stream", Text: "Which stream did you choose in 11th-12th?", Type: TypeChoice, Options: []string{"Science (PCM)", "Science (PCB)", "Commerce", "Arts/Humanities", "Vocational/Other"}},
	{ID: "favorite_subject_hsc", Text: "Which subject do you enjoy the most?", Type: TypeText, MinLength: 1, ErrorMessage: "Please enter a subject"},
	{ID: "exam_prep", Text: "Are you preparing for any competitive exams?", Type: TypeChoice, Options: []string{"Yes — JEE/NEET", "Yes — CLAT/CA/Other", "Yes — State entrance exams", "No, not yet", "No, I prefer direct admission"}},
	{ID: "career_clarity", Text: "How clear are you about your career path?", Type: TypeChoice, Options: []string{"Very clear — I know what I want", "Somewhat clear — narrowed down options", "Confused — need guidance", "Open to exploring options"}},
	{ID: "higher_ed", Text: "What are your plans after 12th?", Type: TypeChoice, Options: []string{"Engineering/B.Tech", "Medical (MBBS/BDS/etc.)", "Law (LLB)", "Design/Architecture", "Commerce (B.Com/BBA/CA)", "Arts/Humanities (BA)", "Science (B.Sc)", "Unsure yet"}},
	{ID: "interest_area", Text: "Which field excites you the most?", Type: TypeChoice, Options: []string{"Technology & Innovation", "Healthcare & Medicine", "Business & Entrepreneurship", "Creative Arts & Design", "Social Sciences & Law", "Research & Academia", "Government & Public Service"}},
	{ID: "study_abroad", Text: "Are you considering studying abroad?", Type: TypeChoice, Options: []string{"Yes, definitely", "Maybe, if opportunities arise", "No, prefer India", "Haven't thought about it"}},
	{ID: "internship_exp", Text: "Have you done any internships or projects?", Type: TypeChoice, Options: []string{"Yes, multiple", "Yes, one", "No, but planning to", "No, not interested"}},
	{ID: "skill_dev", Text: "What skills are you currently developing?", Type: TypeText, MinLength: 1, ErrorMessage: "Please share your skills"},
	{ID: "work_style", Text: "What kind of work environment do you prefer?", Type: TypeChoice, Options: []string{"Corporate/office job", "Startup/dynamic environment", "Self-employed/freelance", "Research/academic setting", "Field work/travel", "Government/public sector"}},
	{ID: "motivation", Text: "What motivates you the most?", Type: TypeChoice, Options: []string{"Financial success", "Making a difference", "Personal growth", "Recognition & awards", "Work-life balance", "Innovation & creativity"}},
	{ID: "final_message", Text: "Anything else you'd like to share about your goals or interests?", Type: TypeText},
}

var motivationalQuotes = []string{
	"Your future is created by what you do today, not tomorrow! 💪",
	"Every expert was once a beginner. Keep going! 🚀",
	"The best time to plant a tree was 20 years ago. The second best time is now. 🌱",
	"Don't watch the clock; do what it does. Keep going! ⏰",
	"Success is not final, failure is not fatal: it is the courage to continue that counts. 🎯",
	"Believe you can and you're halfway there! ✨",
}
