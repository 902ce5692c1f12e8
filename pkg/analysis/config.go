package analysis

import (
	"path/filepath"
	"strings"
)

// Severe tiers raise an issue from medium to high. They are deliberately not
// configurable; only the base thresholds below are.
const (
	SevereFileLines      = 1000
	SevereComplexity     = 20
	SevereFunctionLines  = 100
	SevereNestingDepth   = 6
	SevereParameterCount = 7
)

// Config carries the thresholds and fixed lists that drive the engine. It is
// immutable once handed to an Analyzer; callers needing different limits build
// a new Config.
type Config struct {
	LargeFileLines  int      // a file above this many lines is flagged
	ComplexityLimit int      // a function above this complexity is flagged
	FunctionLines   int      // a function body above this many lines is flagged
	NestingLimit    int      // brace depth above this is flagged
	ParameterLimit  int      // a signature above this many parameters is flagged
	AllowedNumbers  []int    // numeric literals never flagged as magic
	ExcludePaths    []string // path substrings that exclude a file from the walk
	Extensions      []string // file extensions eligible for scanning
	TypedExtensions []string // extensions subject to the weak-typing check
}

// DefaultConfig returns the baked-in thresholds and keyword lists.
func DefaultConfig() Config {
	return Config{
		LargeFileLines:  500,
		ComplexityLimit: 10,
		FunctionLines:   50,
		NestingLimit:    4,
		ParameterLimit:  5,
		AllowedNumbers:  []int{0, 1, 10, 100, 1000},
		ExcludePaths:    []string{"node_modules", "dist", "build", ".test.", ".spec.", "__tests__"},
		Extensions:      []string{".ts", ".tsx", ".js", ".jsx"},
		TypedExtensions: []string{".ts", ".tsx"},
	}
}

// MatchesExtension reports whether the path carries one of the eligible
// source extensions.
func (c Config) MatchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, allowed := range c.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// IsExcluded reports whether any excluded substring appears anywhere in the
// path string.
func (c Config) IsExcluded(path string) bool {
	for _, part := range c.ExcludePaths {
		if strings.Contains(path, part) {
			return true
		}
	}
	return false
}

// HasTypedExtension reports whether the path belongs to the statically typed
// variant of the language.
func (c Config) HasTypedExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, typed := range c.TypedExtensions {
		if ext == typed {
			return true
		}
	}
	return false
}

// AllowsNumber reports whether the value is on the magic-number allow-list.
func (c Config) AllowsNumber(value int) bool {
	for _, allowed := range c.AllowedNumbers {
		if value == allowed {
			return true
		}
	}
	return false
}
