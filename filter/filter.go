// Package filter provides expression-based client-side filtering of surveys
// using the expr language.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/gearplug/surveymonkey-go/surveymonkey"
)

// SurveyFilter is a compiled filter expression evaluated against surveys.
type SurveyFilter struct {
	program *vm.Program
	expr    string
}

// helpers are the static functions available inside filter expressions.
func helpers() map[string]any {
	return map[string]any{
		// Date helpers. SurveyMonkey dates are RFC3339-ish strings.
		"parseDate": func(dateStr string) time.Time {
			for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
				if t, err := time.Parse(layout, dateStr); err == nil {
					return t
				}
			}
			return time.Time{}
		},
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"now": time.Now,
		// String helpers, all case-insensitive
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// Compile compiles a filter expression. The expression sees the survey under
// the Survey variable and must evaluate to a boolean.
func Compile(expression string) (*SurveyFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &SurveyFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Match evaluates the filter against a single survey.
func (f *SurveyFilter) Match(survey surveymonkey.Survey) (bool, error) {
	env := helpers()
	env["Survey"] = survey

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not evaluate to a boolean")
	}
	return matched, nil
}

// Apply returns the surveys matching the filter, preserving order.
func (f *SurveyFilter) Apply(surveys []surveymonkey.Survey) ([]surveymonkey.Survey, error) {
	var matched []surveymonkey.Survey
	for _, survey := range surveys {
		ok, err := f.Match(survey)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, survey)
		}
	}
	return matched, nil
}

// String returns the original expression.
func (f *SurveyFilter) String() string {
	return f.expr
}
