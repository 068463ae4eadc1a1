package console

import (
	"strings"

	"github.com/chzyer/readline"
)

const (
	Yes = "y"
	No  = "n"
)

// YesOrNo asks a y/n question. Empty or unrecognized input selects the
// default answer (yes).
func YesOrNo(question string) (string, error) {
	return Prompt(question, Yes, No)
}

// Prompt asks question with a constrained answer set. The first constraint
// is the default and is shown uppercase.
func Prompt(question string, constraints ...string) (string, error) {
	var prompt strings.Builder
	prompt.WriteString(question)
	prompt.WriteString(" [")
	prompt.WriteString(strings.ToUpper(constraints[0]))
	for _, c := range constraints[1:] {
		prompt.WriteString("/")
		prompt.WriteString(c)
	}
	prompt.WriteString("]:")
	rl, err := readline.New(prompt.String())
	if err != nil {
		return "", err
	}
	response, err := rl.Readline()
	if err != nil {
		return "", err
	}
	normalized := strings.ToLower(response)
	for _, c := range constraints {
		if normalized == c {
			return normalized, nil
		}
	}
	return constraints[0], nil
}
