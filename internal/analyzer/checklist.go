package analyzer

import "strings"

// ChecklistRound is one interview round with its rendered prep items.
type ChecklistRound struct {
	Round string   `json:"round"`
	Items []string `json:"items"`
}

// condItem is the per-item conditional policy shared by the checklist
// and plan templates. With no triggers the item is unconditional. With
// triggers, Present is emitted when any trigger skill was extracted
// (case-insensitive); otherwise Absent is emitted, or the item is
// omitted entirely when Absent is empty. Fallback-vs-omit is therefore
// template data, not generator logic.
type condItem struct {
	Triggers []string
	Present  string
	Absent   string
}

func item(text string) condItem { return condItem{Present: text} }

func either(trigger, present, absent string) condItem {
	return condItem{Triggers: []string{trigger}, Present: present, Absent: absent}
}

func when(present string, triggers ...string) condItem {
	return condItem{Triggers: triggers, Present: present}
}

type checklistRoundTemplate struct {
	Round string
	Items []condItem
}

// checklistTemplate: four fixed rounds. Rounds 2 items substitute a
// generic fallback when their skill is absent; round 3 items are
// omitted instead.
var checklistTemplate = []checklistRoundTemplate{
	{
		Round: "Round 1 — Aptitude & Basics",
		Items: []condItem{
			item("Complete 2 timed aptitude mock tests (quantitative)"),
			item("Revise verbal reasoning and data interpretation"),
			item("Practice logical reasoning questions (puzzles, patterns)"),
			item("Solve 5 number series + arrangement problems"),
			item("Review English comprehension and grammar rules"),
			item("Take one full-length timed aptitude test"),
		},
	},
	{
		Round: "Round 2 — DSA & Core CS",
		Items: []condItem{
			either("DSA", "Solve 10 problems on arrays, strings, and sorting", "Review fundamental algorithms (sorting, searching)"),
			either("DSA", "Practice 5 problems each on stacks, queues, linked lists", "Practice basic data structure usage"),
			either("DSA", "Solve 3–5 tree/graph traversal problems (BFS, DFS)", "Study tree and graph basics"),
			either("OOP", "Revise all four OOP pillars with code examples", "Study basic programming concepts"),
			either("DBMS", "Practice complex SQL queries + normalization (1NF–3NF)", "Study relational database basics"),
			either("OS", "Revise process scheduling, memory management, deadlocks", "Review OS fundamentals"),
			either("Networks", "Revise TCP/IP stack, HTTP/HTTPS, DNS, load balancing", "Study basic networking concepts"),
			item("Practice 2 coding problems on LeetCode/HackerRank per day"),
		},
	},
	{
		Round: "Round 3 — Tech Interview (Projects + Stack)",
		Items: []condItem{
			item("Prepare 3-minute explanation for each project you've built"),
			when("Revise React hooks, state management, component lifecycle", "React"),
			when("Review Node.js event loop, async patterns, Express middleware", "Node.js"),
			when("Prepare REST API design examples from your projects", "REST"),
			when("Revise joins, indexes, transactions, query optimization", "SQL", "PostgreSQL", "MySQL"),
			when("Revise MongoDB aggregation, indexing, schema design", "MongoDB"),
			when("Review Docker commands, Dockerfile best practices", "Docker"),
			when("Prepare cloud architecture examples you've used", "AWS", "Azure", "GCP"),
			when("Revise Python-specific concepts: GIL, decorators, generators", "Python"),
			when("Revise Java: JVM, collections, multithreading, Spring Boot basics", "Java"),
			item(`Prepare answers to "How would you scale this system?" for each project`),
			item("Review your GitHub repos — ensure README + comments are clean"),
		},
	},
	{
		Round: "Round 4 — HR & Managerial",
		Items: []condItem{
			item(`Prepare a crisp 2-minute "Tell me about yourself" answer`),
			item("Research the company's mission, recent news, and products"),
			item("Write down 3 examples of challenges you overcame"),
			item("Prepare questions to ask the interviewer (show curiosity)"),
			item("Practice explaining technical concepts in simple language"),
			item("Mock HR interview with a friend or record yourself"),
		},
	},
}

// skillSet lowercases the flattened skill list for membership tests.
func skillSet(skills ExtractedSkills) map[string]bool {
	set := make(map[string]bool)
	for _, s := range FlattenSkills(skills) {
		set[strings.ToLower(s)] = true
	}
	return set
}

// renderItems applies the conditional policy of each template item
// against the extracted skill set.
func renderItems(items []condItem, have map[string]bool) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if len(it.Triggers) == 0 {
			out = append(out, it.Present)
			continue
		}
		matched := false
		for _, t := range it.Triggers {
			if have[strings.ToLower(t)] {
				matched = true
				break
			}
		}
		switch {
		case matched:
			out = append(out, it.Present)
		case it.Absent != "":
			out = append(out, it.Absent)
		}
	}
	return out
}

// GenerateChecklist renders the four-round preparation checklist for
// the extracted skill set.
func GenerateChecklist(skills ExtractedSkills) []ChecklistRound {
	have := skillSet(skills)
	rounds := make([]ChecklistRound, 0, len(checklistTemplate))
	for _, tpl := range checklistTemplate {
		rounds = append(rounds, ChecklistRound{
			Round: tpl.Round,
			Items: renderItems(tpl.Items, have),
		})
	}
	return rounds
}
