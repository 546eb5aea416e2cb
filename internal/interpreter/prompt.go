package interpreter

import (
	"fmt"
	"strings"
)

// Page is a navigation target of the client application
type Page struct {
	Number  int
	Name    string
	Aliases []string
}

// Pages lists the navigation targets in page order.
var Pages = []Page{
	{1, "Study Tracker", []string{"home", "main page"}},
	{2, "AI Powered", []string{"ai", "search"}},
	{3, "Task Manager", []string{"tasks", "todo"}},
	{4, "Reminders", []string{"alerts", "notifications"}},
	{5, "Notes", []string{"note taking", "writing"}},
	{6, "Budget", []string{"finances", "money", "expenses"}},
	{7, "Study Hours Tracker", []string{"timer", "hours"}},
}

const commandPromptHeader = `You classify one line typed by a student into an action. The user can create
tasks, reminders and budget entries, or move to another page of the app.

User input: %q

Reply with a single raw JSON object and nothing else. No markdown, no code
fences, no commentary. The reply must start with { and end with }.

Shape of the object:
{
  "type": "task" | "reminder" | "budget" | "navigation" | "unknown",
  "action": "create" | "navigate",
  "data": { ... }
}

Fields of "data" per type:
- task: "title" (string), "description" (optional string),
  "priority" ("low" | "medium" | "high"), "dueDate" (optional, YYYY-MM-DD),
  "category" (optional string)
- reminder: "title" (string), "time" (HH:MM, 24-hour clock),
  "date" (optional, YYYY-MM-DD, defaults to today)
- budget: "type" ("income" | "expense"), "amount" (number),
  "description" (string), "category" (string)
- navigation: "page" (1-7), "pageName" (string)

Reminder times are always written on the 24-hour clock:
- "7pm" or "7:00pm" is "19:00", "7am" or "7:00am" is "07:00"
- "12pm" is "12:00" (noon), "12am" is "00:00" (midnight)
- "1pm" is "13:00", "6pm" is "18:00", "11pm" is "23:00", "2am" is "02:00"
- "7:30pm" is "19:30", "2:15am" is "02:15", "11:45pm" is "23:45"
- a date without a time means "09:00"
- when the input names both a time and a relative day ("at 7pm today",
  "8am tomorrow") keep the stated time: "remind me at 7pm today" is "19:00"

Budget amounts:
- read the number out of "₹100", "Rs 100", "rupees 100", "100 rupees",
  including decimals such as "₹15.50"
- "spent", "paid", "bought", "cost" mean an expense
- "earned", "received", "salary", "income", "got" mean income

Examples:
- "remind me to call mom at 7pm" is a reminder with time "19:00"
- "reminder for meeting at 2:30pm" is a reminder with time "14:30"
- "remind me tomorrow" is a reminder with time "09:00"
- "Add task to study math homework due tomorrow" is a task
- "I spent ₹15 on lunch" is a budget expense of 15
- "Add income of ₹500 from job" is budget income of 500
- "Go to tasks" is navigation to page 3
- "Take me to budget" is navigation to page 6
`

// BuildPrompt returns the classification prompt for one line of user input.
func BuildPrompt(text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, commandPromptHeader, text)

	b.WriteString("\nPages:\n")
	for _, p := range Pages {
		fmt.Fprintf(&b, "- Page %d: %s, %s\n", p.Number, p.Name, strings.Join(p.Aliases, ", "))
	}
	b.WriteString("\nIf the input is unclear or fits none of these, use type \"unknown\".\n")
	return b.String()
}

func studyPlanPrompt(subject string, goals []string, hoursPerWeek int) string {
	return fmt.Sprintf(`Create a detailed study plan for %s with these goals: %s.
The student has %d hours available per week.
Give a structured weekly plan with specific topics, time allocation and study methods.`,
		subject, strings.Join(goals, ", "), hoursPerWeek)
}

func summaryPrompt(notes string) string {
	return fmt.Sprintf("Write a concise summary of the following notes, highlighting the key points and important concepts:\n\n%s", notes)
}

func quizPrompt(topic string, difficulty Difficulty) string {
	return fmt.Sprintf(`Generate 5 %s level quiz questions about %s.
Give each question 4 multiple choice options and mark the correct answer.
Format the result as JSON with questions, options and correct answers.`, difficulty, topic)
}
