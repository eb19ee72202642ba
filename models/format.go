// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasteFormat identifies how a paste's plaintext should be presented once
// decrypted. It carries no rendering behaviour itself — that lives in the
// (out of scope) HTML front end — but callers need a stable set of values
// to request and to report back in stats.
type PasteFormat string

const (
	FormatPlainText PasteFormat = "plain_text"
	FormatMarkdown  PasteFormat = "markdown"
	FormatCode      PasteFormat = "code"
	FormatJSON      PasteFormat = "json"
	FormatJS        PasteFormat = "javascript"
	FormatTS        PasteFormat = "typescript"
	FormatPython    PasteFormat = "python"
	FormatRust      PasteFormat = "rust"
	FormatGo        PasteFormat = "go"
	FormatCpp       PasteFormat = "cpp"
	FormatKotlin    PasteFormat = "kotlin"
	FormatJava      PasteFormat = "java"
	FormatCSharp    PasteFormat = "csharp"
	FormatPHP       PasteFormat = "php"
	FormatRuby      PasteFormat = "ruby"
	FormatBash      PasteFormat = "bash"
	FormatYAML      PasteFormat = "yaml"
	FormatSQL       PasteFormat = "sql"
	FormatSwift     PasteFormat = "swift"
	FormatHTML      PasteFormat = "html"
	FormatCSS       PasteFormat = "css"
)

// knownFormats enumerates every valid PasteFormat, used by Valid.
var knownFormats = map[PasteFormat]struct{}{
	FormatPlainText: {}, FormatMarkdown: {}, FormatCode: {}, FormatJSON: {},
	FormatJS: {}, FormatTS: {}, FormatPython: {}, FormatRust: {}, FormatGo: {},
	FormatCpp: {}, FormatKotlin: {}, FormatJava: {}, FormatCSharp: {},
	FormatPHP: {}, FormatRuby: {}, FormatBash: {}, FormatYAML: {},
	FormatSQL: {}, FormatSwift: {}, FormatHTML: {}, FormatCSS: {},
}

// Valid reports whether f is one of the 21 recognized paste formats.
func (f PasteFormat) Valid() bool {
	_, ok := knownFormats[f]
	return ok
}

// DefaultFormat is used when a create request omits the format field.
const DefaultFormat = FormatPlainText
