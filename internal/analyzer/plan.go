package analyzer

// PlanBlock is one day range of the study plan.
type PlanBlock struct {
	Days  string   `json:"days"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

type planBlockTemplate struct {
	Days  string
	Focus string
	Tasks []condItem
}

// planTemplate: five fixed day ranges. Days 1–4 substitute generic
// fallback tasks when the trigger skill is absent; days 5–6 omit the
// task instead; day 7 is unconditional.
var planTemplate = []planBlockTemplate{
	{
		Days:  "Day 1–2",
		Focus: "Basics + Core CS",
		Tasks: []condItem{
			item("Revise OOP concepts: inheritance, polymorphism, encapsulation, abstraction"),
			either("DBMS", "Practice SQL queries, normalization, and ER diagrams", "Study relational database basics"),
			either("OS", "Revise OS topics: processes, threads, deadlocks, scheduling", "Study fundamental computer science concepts"),
			either("Networks", "Revise TCP/IP, HTTP methods, DNS, REST principles", "Review networking basics"),
			item("Complete 5 aptitude practice questions"),
		},
	},
	{
		Days:  "Day 3–4",
		Focus: "DSA + Coding Practice",
		Tasks: []condItem{
			either("DSA", "Solve 5 array/string problems (LeetCode easy→medium)", "Practice 5 basic coding problems"),
			either("DSA", "Cover linked lists, stacks, queues, trees, binary search", "Study core algorithmic thinking"),
			either("DSA", "Tackle 2 dynamic programming problems", "Practice problem-solving patterns"),
			item("Time yourself — simulate 45-minute interview coding windows"),
			item("Review solutions and understand time/space complexity"),
		},
	},
	{
		Days:  "Day 5",
		Focus: "Projects + Resume Alignment",
		Tasks: []condItem{
			item("Select your 2–3 strongest projects to discuss in interviews"),
			when("Ensure React projects highlight hooks, state management, and responsiveness", "React"),
			when("Ensure backend projects show API design, authentication, error handling", "Node.js", "Express"),
			when("Polish Python projects — clean code, docstrings, README", "Python"),
			when("Dockerize at least one project if not already done", "Docker"),
			item("Update resume: add quantified impact to every bullet point"),
			item("Tailor resume keywords to match this job description"),
		},
	},
	{
		Days:  "Day 6",
		Focus: "Mock Interviews + Question Practice",
		Tasks: []condItem{
			item("Answer 10 likely interview questions out loud (use the list generated)"),
			item("Do a full 1-hour mock technical interview with a peer"),
			when("Practice 3 complex SQL query problems", "SQL"),
			when("Review a sample system design problem for your stack", "React", "Node.js"),
			item(`Record yourself answering "Tell me about yourself" — review for clarity`),
			item("Research the company: products, tech stack, recent news"),
		},
	},
	{
		Days:  "Day 7",
		Focus: "Revision + Weak Areas",
		Tasks: []condItem{
			item("Quick revision: OOP, DSA core concepts, your tech stack"),
			item("Revisit topics you found hardest in days 1–6"),
			item("Read through your project code one final time"),
			item("Do a short aptitude test (30 min) for confidence"),
			item("Rest well — no cramming; confidence and clarity matter more"),
		},
	},
}

// GeneratePlan renders the multi-day study plan for the extracted
// skill set.
func GeneratePlan(skills ExtractedSkills) []PlanBlock {
	have := skillSet(skills)
	blocks := make([]PlanBlock, 0, len(planTemplate))
	for _, tpl := range planTemplate {
		blocks = append(blocks, PlanBlock{
			Days:  tpl.Days,
			Focus: tpl.Focus,
			Tasks: renderItems(tpl.Tasks, have),
		})
	}
	return blocks
}
