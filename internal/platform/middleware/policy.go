// Copyright (c) 2026 CineHub. All rights reserved.

package middleware

import (
	"strings"

	"github.com/cinehub/api/internal/platform/sec"
)

// # Route Access Policy
//
// Authorization decisions are driven by a static, ordered table mapping path
// patterns to one of three admission states. The table is evaluated
// most-specific-first: the first matching rule wins, and anything unmatched
// is Public (all read-only catalog and review browsing is public by design).

// Access is the admission state required for a route.
type Access int

const (
	// AccessPublic admits every request, with or without a token.
	AccessPublic Access = iota

	// AccessAuthenticated requires a valid, unexpired token of any role.
	AccessAuthenticated

	// AccessRole requires a valid token whose role precedence meets or
	// exceeds the rule's Role.
	AccessRole
)

// Rule binds a method set and a path pattern to an admission state.
//
// # Pattern Syntax
//
//   - Literal segments match exactly ("/movies").
//   - "*" matches exactly one path segment ("/movies/*").
//   - A terminal "**" matches the remainder of the path ("/movies/**").
type Rule struct {
	// Methods restricts the rule to the listed HTTP methods.
	// An empty slice matches every method.
	Methods []string

	// Pattern is the path pattern, see syntax above.
	Pattern string

	// Access is the admission state enforced when the rule matches.
	Access Access

	// Role is the minimum role for [AccessRole] rules.
	Role sec.UserRole
}

// Table is an ordered list of rules, evaluated most-specific-first.
type Table []Rule

// Decide returns the admission state for the given method and path.
//
// The first matching rule wins; unmatched requests default to Public.
func (t Table) Decide(method, path string) Rule {
	for _, rule := range t {
		if rule.matches(method, path) {
			return rule
		}
	}
	return Rule{Access: AccessPublic}
}

// matches reports whether the rule applies to the method and path.
func (r Rule) matches(method, path string) bool {
	if len(r.Methods) > 0 {
		found := false
		for _, m := range r.Methods {
			if strings.EqualFold(m, method) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return matchPattern(r.Pattern, path)
}

// matchPattern matches a path against a segment pattern.
func matchPattern(pattern, path string) bool {
	patternSegments := splitPath(pattern)
	pathSegments := splitPath(path)

	for i, segment := range patternSegments {
		// Terminal "**" swallows the rest of the path (including nothing).
		if segment == "**" && i == len(patternSegments)-1 {
			return true
		}

		if i >= len(pathSegments) {
			return false
		}

		if segment == "*" {
			continue
		}

		if segment != pathSegments[i] {
			return false
		}
	}

	return len(patternSegments) == len(pathSegments)
}

// splitPath splits a path into non-empty segments.
func splitPath(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
