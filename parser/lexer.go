package parser

import "github.com/alecthomas/participle/v2/lexer"

// bowlLexer tokenizes Bowl source text. Comments
// ("~#...#~") are elided at the lexer level — nesting is deliberately
// not implemented (see DESIGN.md).
var bowlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `~#(?s:.*?)#~`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "QEq", Pattern: `\?=`},
	{Name: "Punct", Pattern: `[{}\[\];:=^!+\-*/&|()><@]`},
})
