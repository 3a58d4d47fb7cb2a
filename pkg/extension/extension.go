// Package extension maps Codewars language names to solution file suffixes.
package extension

// JavaScript is the suffix whose content is run through the code formatter.
const JavaScript = ".js"

var byLanguage = map[string]string{
	"BF":           ".bf",
	"C":            ".c",
	"C#":           ".cs",
	"C++":          ".cpp",
	"CSS3":         ".css",
	"Chapel":       ".chpl",
	"Clojure":      ".clj",
	"CoffeeScript": ".coffee",
	"Crystal":      ".cr",
	"D":            ".d",
	"Dart":         ".dart",
	"Elixir":       ".ex",
	"Elm":          ".elm",
	"Erlang":       ".erl",
	"F#":           ".fs",
	"Fortran":      ".f",
	"Go":           ".go",
	"Groovy":       ".groovy",
	"Haskell":      ".hs",
	"Java":         ".java",
	"JavaScript":   JavaScript,
	"Julia":        ".jl",
	"Kotlin":       ".kt",
	"Lisp":         ".lsp",
	"Lua":          ".lua",
	"NASM":         ".exe",
	"Nim":          ".nim",
	"OCaml":        ".ml",
	"Objective-C":  ".h",
	"PHP":          ".php",
	"Perl":         ".pl",
	"PowerShell":   ".ps1",
	"PureScript":   ".purs",
	"Python":       ".py",
	"R":            ".r",
	"Racket":       ".rkt",
	"Ruby":         ".rb",
	"Rust":         ".rs",
	"SQL":          ".sql",
	"Sass":         ".sass",
	"Scala":        ".scala",
	"Shell":        ".sh",
	"Solidity":     ".solidity",
	"Swift":        ".swift",
	"TypeScript":   ".ts",
}

// Resolve returns the file suffix for language, leading dot included.
// Unknown languages resolve to "" and the file is written without a suffix.
func Resolve(language string) string {
	return byLanguage[language]
}

// Known reports whether language has an entry in the table.
func Known(language string) bool {
	_, ok := byLanguage[language]
	return ok
}
