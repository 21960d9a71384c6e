package assistant

import (
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)```(?:sql)?\\s*(.*?)\\s*```")

// forbidden keywords checked as whole words after the SELECT prefix check.
// CTEs are allowed; anything that writes, alters, or grants is not.
var forbiddenKeywords = []string{
	"insert", "update", "delete", "drop", "alter", "create", "truncate",
	"grant", "revoke", "merge", "call", "execute", "copy", "vacuum",
}

var wordPattern = regexp.MustCompile(`[a-z_]+`)

// ExtractSQL pulls the SQL statement out of a model response. Models often
// wrap statements in a markdown fence; take the fenced body when present,
// otherwise the trimmed response itself.
func ExtractSQL(response string) (string, error) {
	sql := strings.TrimSpace(response)
	if m := fencePattern.FindStringSubmatch(sql); m != nil {
		sql = strings.TrimSpace(m[1])
	}
	sql = strings.TrimSuffix(sql, ";")
	if sql == "" {
		return "", ErrNoSQLGenerated
	}
	return sql, nil
}

// GuardSQL rejects any statement that is not a plain read. The statement
// must start with SELECT or WITH and contain no write/DDL keyword anywhere,
// including inside subqueries. Multiple statements are rejected by the
// semicolon check.
func GuardSQL(sql string) error {
	lower := strings.ToLower(strings.TrimSpace(sql))
	if lower == "" {
		return ErrNoSQLGenerated
	}
	if !strings.HasPrefix(lower, "select") && !strings.HasPrefix(lower, "with") {
		return ErrUnsafeSQL
	}
	if strings.Contains(lower, ";") {
		return ErrUnsafeSQL
	}
	for _, word := range wordPattern.FindAllString(lower, -1) {
		for _, kw := range forbiddenKeywords {
			if word == kw {
				return ErrUnsafeSQL
			}
		}
	}
	return nil
}
