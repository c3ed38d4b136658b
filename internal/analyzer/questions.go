package analyzer

// Per-skill question bank. Only the first questionsPerSkill entries of
// a matched skill are emitted, in table order — keep the strongest
// questions first.
var questionBank = map[string][]string{
	"DSA": {
		"How would you find the kth largest element in an unsorted array?",
		"Explain the difference between BFS and DFS and when you would use each.",
		"How do you detect a cycle in a linked list?",
		`Walk me through solving the "merge intervals" problem.`,
		"What is dynamic programming? Give an example.",
	},
	"OOP": {
		"Explain the four pillars of OOP with examples.",
		"What is the difference between an abstract class and an interface?",
		"Explain the SOLID principles.",
	},
	"SQL": {
		"Explain indexing and when it helps query performance.",
		"What is the difference between INNER JOIN and LEFT JOIN?",
		"How would you write a query to find duplicate records?",
		"What is a database transaction and what are ACID properties?",
		"How would you optimize a slow SQL query?",
	},
	"React": {
		"Explain state management options in a React app.",
		"What is the difference between useEffect and useLayoutEffect?",
		"How does React's virtual DOM work?",
		"Explain controlled vs uncontrolled components.",
	},
	"Node.js": {
		"How does Node.js handle asynchronous operations?",
		"Explain the event loop in Node.js.",
		"What is middleware in Express?",
	},
	"Docker": {
		"Explain the difference between a Docker image and a container.",
		"How do you reduce Docker image size?",
		"What is Docker Compose used for?",
	},
	"AWS": {
		"Explain the difference between S3, EC2, and Lambda.",
		"How do you set up auto-scaling in AWS?",
		"What is IAM and why is it important?",
	},
	"Python": {
		"What is the GIL in Python and why does it matter?",
		"Explain list comprehensions and generator expressions.",
		"How does Python handle memory management?",
	},
	"Java": {
		"Explain JVM memory areas (heap, stack, method area).",
		"What is the difference between == and .equals() in Java?",
		"How do you implement multithreading in Java?",
	},
	"MongoDB": {
		"How does MongoDB handle schema design differently from SQL?",
		"Explain when you would use embedded documents vs references.",
		"What is aggregation in MongoDB?",
	},
	"REST": {
		"What are RESTful API design best practices?",
		"Explain HTTP status codes and their correct usage.",
		"How do you handle API versioning?",
	},
}

// generalQuestions are appended to every question list regardless of
// the detected stack.
var generalQuestions = []string{
	"Walk me through a challenging project you worked on.",
	"How do you approach debugging a problem you've never seen before?",
	"Explain the software development lifecycle (SDLC).",
	"What version control system have you used and how?",
	"How do you ensure code quality in your projects?",
	"Describe a time you had to learn a new technology quickly.",
}

var hrQuestions = []string{
	"Tell me about yourself in 2 minutes.",
	"Why do you want to join this company?",
	"Where do you see yourself in 3 years?",
	"Describe a time you failed and what you learned.",
	"How do you handle pressure and tight deadlines?",
}

const (
	maxQuestions      = 10
	questionsPerSkill = 2
	generalCount      = 3
	hrCount           = 2
)

// GenerateQuestions builds the likely-question list: the first two
// bank entries per matched skill (catalog order), then three general
// and two HR questions, deduplicated in first-seen order and capped at
// ten. Fewer than ten is a valid result, not an error.
func GenerateQuestions(skills ExtractedSkills) []string {
	var out []string
	seen := make(map[string]bool)
	take := func(qs []string, n int) {
		if len(qs) > n {
			qs = qs[:n]
		}
		for _, q := range qs {
			if !seen[q] {
				seen[q] = true
				out = append(out, q)
			}
		}
	}

	for _, skill := range FlattenSkills(skills) {
		take(questionBank[skill], questionsPerSkill)
	}
	take(generalQuestions, generalCount)
	take(hrQuestions, hrCount)

	if len(out) > maxQuestions {
		out = out[:maxQuestions]
	}
	return out
}
