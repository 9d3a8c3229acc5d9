package llm

// Tolerant JSON extraction for model output. Models wrap objects in prose
// or code fences and emit trailing commas, curly quotes, and truncated
// documents; the pipeline here recovers the object when the damage is
// mechanical and reports a useful error when it is not.

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxCloseDepth bounds how many missing closing braces and brackets a
// truncation repair will append.
const maxCloseDepth = 8

// Validator is implemented by decode targets that check and normalize
// their own shape after unmarshalling.
type Validator interface {
	Validate() error
}

// DecodeInto extracts the first JSON object from raw model output and
// unmarshals it into out, running out.Validate() when implemented.
func DecodeInto(raw string, out interface{}) error {
	obj, err := ExtractJSONObject(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(obj), out); err != nil {
		return fmt.Errorf("unmarshal extracted object: %w", err)
	}
	if v, ok := out.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ExtractJSONObject returns the first complete JSON object in raw,
// attempting mechanical repairs when the object is malformed.
func ExtractJSONObject(raw string) (string, error) {
	s := stripFences(raw)
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", fmt.Errorf("no JSON object in output")
	}
	s = s[start:]

	if obj, ok := balancedObject(s); ok {
		if json.Valid([]byte(obj)) {
			return obj, nil
		}
		repaired := repairTokens(obj)
		if json.Valid([]byte(repaired)) {
			return repaired, nil
		}
		return "", fmt.Errorf("object is balanced but not valid JSON")
	}

	// Unbalanced: the output was cut off mid-document. Fix token-level
	// damage first, then close the open scopes.
	repaired := closeOpenScopes(repairTokens(s))
	if json.Valid([]byte(repaired)) {
		return repaired, nil
	}
	return "", fmt.Errorf("could not repair truncated object")
}

// stripFences unwraps a markdown code fence when the output carries one.
func stripFences(s string) string {
	i := strings.Index(s, "```")
	if i < 0 {
		return s
	}
	rest := s[i+3:]
	// Drop the language tag line ("json\n" typically).
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	}
	if j := strings.LastIndex(rest, "```"); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

// balancedObject returns the prefix of s forming one complete JSON object,
// tracking string and escape state so braces inside strings do not count.
func balancedObject(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// repairTokens fixes token-level damage: curly quotes used as delimiters
// and trailing commas before a closing brace or bracket.
func repairTokens(s string) string {
	r := strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
	return stripTrailingCommas(r.Replace(s))
}

// stripTrailingCommas drops commas whose next non-space character closes a
// scope. String contents pass through untouched.
func stripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}
		if c == ',' {
			j := i + 1
			for j < len(s) && isJSONSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// closeOpenScopes finishes a truncated document: closes a dangling string,
// completes a dangling key with null, trims a dangling comma, and appends
// the missing closers. Documents cut deeper than maxCloseDepth are
// returned unrepaired.
func closeOpenScopes(s string) string {
	stack, inString := scanOpenScopes(s)
	if len(stack) == 0 && !inString {
		return s
	}
	if len(stack) > maxCloseDepth {
		return s
	}
	out := strings.TrimRight(s, " \t\r\n")
	if inString {
		out += `"`
	}
	out = strings.TrimRight(out, " \t\r\n")
	if strings.HasSuffix(out, ":") {
		out += " null"
	} else if strings.HasSuffix(out, ",") {
		out = out[:len(out)-1]
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out += string(stack[i])
	}
	return out
}

// scanOpenScopes walks s and returns the closers still owed (in open
// order) plus whether the document ends inside a string.
func scanOpenScopes(s string) ([]byte, bool) {
	var stack []byte
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if n := len(stack); n > 0 && stack[n-1] == c {
				stack = stack[:n-1]
			}
		}
	}
	return stack, inString
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
