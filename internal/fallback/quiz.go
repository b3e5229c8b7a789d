// Package fallback synthesizes substitute content when the remote service
// fails. All output is deterministic: the same (skill, chapter) input always
// produces byte-identical payloads, which keeps offline behavior reproducible.
package fallback

import (
	"fmt"

	"github.com/skillgenie/skillgenie/internal/types"
)

// Quiz payload defaults, matching what the remote service returns.
const (
	DefaultQuestionCount = 5
	QuizTimeLimit        = 300
	QuizPassingScore     = 70
	QuizPoints           = 10
)

// questionBanks holds curated questions for well-known skills, matched by
// exact skill name. Everything else gets generic synthesized questions.
var questionBanks = map[string][]types.QuizQuestion{
	"JavaScript": {
		{
			Question:     "Which keyword declares a block-scoped variable in JavaScript?",
			Options:      []string{"var", "let", "def", "local"},
			CorrectIndex: 1,
			Explanation:  "let (and const) are block-scoped; var is function-scoped.",
		},
		{
			Question:     "What does '===' compare in JavaScript?",
			Options:      []string{"Value only", "Type only", "Value and type", "Reference only"},
			CorrectIndex: 2,
			Explanation:  "Strict equality compares both value and type without coercion.",
		},
		{
			Question:     "Which method converts a JSON string into an object?",
			Options:      []string{"JSON.parse", "JSON.stringify", "JSON.decode", "Object.from"},
			CorrectIndex: 0,
			Explanation:  "JSON.parse parses a JSON string; JSON.stringify does the opposite.",
		},
	},
	"Python": {
		{
			Question:     "Which keyword defines a function in Python?",
			Options:      []string{"func", "def", "function", "lambda def"},
			CorrectIndex: 1,
			Explanation:  "Functions are defined with the def keyword.",
		},
		{
			Question:     "What is the output type of the expression 3 / 2 in Python 3?",
			Options:      []string{"int", "float", "decimal", "str"},
			CorrectIndex: 1,
			Explanation:  "True division always produces a float in Python 3.",
		},
		{
			Question:     "Which data structure preserves insertion order and allows duplicates?",
			Options:      []string{"set", "dict", "list", "frozenset"},
			CorrectIndex: 2,
			Explanation:  "Lists are ordered sequences and may contain duplicates.",
		},
	},
	"React": {
		{
			Question:     "Which hook manages local state in a function component?",
			Options:      []string{"useEffect", "useState", "useContext", "useRef"},
			CorrectIndex: 1,
			Explanation:  "useState returns a state value and its setter.",
		},
		{
			Question:     "What triggers a React component to re-render?",
			Options:      []string{"A state or prop change", "A CSS change", "A DOM query", "A console.log call"},
			CorrectIndex: 0,
			Explanation:  "React re-renders when state or props change.",
		},
		{
			Question:     "What is JSX?",
			Options:      []string{"A templating engine", "A syntax extension compiled to JavaScript", "A CSS preprocessor", "A browser API"},
			CorrectIndex: 1,
			Explanation:  "JSX is a syntax extension that compiles to React.createElement calls.",
		},
	},
}

// QuizQuestions synthesizes count questions for a skill and chapter. When the
// skill has a curated bank, the bank is used and repeated as needed, with a
// review suffix distinguishing repeated questions. Unknown skills get generic
// questions parameterized only by the skill and chapter names.
func QuizQuestions(skill, chapter string, count int) []types.QuizQuestion {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	bank, ok := questionBanks[skill]
	if !ok {
		return genericQuestions(skill, chapter, count)
	}

	questions := make([]types.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		q := bank[i%len(bank)]
		q.ID = i + 1
		if i >= len(bank) {
			q.Question = q.Question + " (Review)"
		}
		questions = append(questions, q)
	}
	return questions
}

// genericQuestions builds placeholder questions for skills without a bank.
func genericQuestions(skill, chapter string, count int) []types.QuizQuestion {
	questions := make([]types.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, types.QuizQuestion{
			ID:       i + 1,
			Question: fmt.Sprintf("Which statement about %s (topic %d, %s) is most accurate?", skill, i+1, chapter),
			Options: []string{
				fmt.Sprintf("It is a core concept every %s practitioner should know", skill),
				"It is deprecated and no longer used",
				"It only applies to unrelated fields",
				"It has no practical applications",
			},
			CorrectIndex: 0,
			Explanation:  fmt.Sprintf("Review the %s chapter of your %s roadmap for the details.", chapter, skill),
		})
	}
	return questions
}

// Quiz wraps synthesized questions in the full quiz payload shape.
func Quiz(skill, chapter string) *types.Quiz {
	questions := QuizQuestions(skill, chapter, DefaultQuestionCount)
	return &types.Quiz{
		Title:          fmt.Sprintf("%s: %s", skill, chapter),
		TotalQuestions: len(questions),
		TimeLimit:      QuizTimeLimit,
		PassingScore:   QuizPassingScore,
		Points:         QuizPoints,
		Questions:      questions,
		Fallback:       true,
	}
}
