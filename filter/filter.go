// Package filter compiles boolean expressions for narrowing down search
// results client-side, using the expr language.
//
// An expression sees the fields of one result (Name, MemberCount,
// HasVerifiedBadge, ...) plus a small set of helper functions:
//
//	HasVerifiedBadge && MemberCount > 100
//	contains(Name, "roblox") && Created < parseDate("2020-01-01")
package filter

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/samber/lo"
)

// Filter is a compiled expression evaluated against one result at a
// time. A compiled Filter is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile parses and compiles a filter expression.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one result environment.
// Evaluation errors and non-boolean results count as a non-match.
func (f *Filter) Match(env map[string]any) bool {
	full := helperFunctions()
	maps.Copy(full, env)

	result, err := expr.Run(f.program, full)
	if err != nil {
		return false
	}

	matched, ok := result.(bool)
	return ok && matched
}

// Enver is any result type that can expose its fields to a filter.
type Enver interface {
	FilterEnv() map[string]any
}

// Apply returns the items whose environment matches the filter,
// preserving order.
func Apply[T Enver](f *Filter, items []T) []T {
	return lo.Filter(items, func(item T, _ int) bool {
		return f.Match(item.FilterEnv())
	})
}

// helperFunctions builds the static functions available to every
// expression.
func helperFunctions() map[string]any {
	return map[string]any{
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

		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"now": time.Now,
	}
}
