package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"noodle/ast"
)

var grammarParser = participle.MustBuild[grammarProgram](
	participle.Lexer(bowlLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// Parse turns Bowl source text into the program's root Bowl literal.
// Every failure — lexical, grammatical,
// or the assignment-target check in convertExpr — is a parse error
// and therefore fatal.
func Parse(filename, source string) (ast.BowlLit, error) {
	g, err := grammarParser.ParseString(filename, source)
	if err != nil {
		return ast.BowlLit{}, errors.Wrap(err, "parse error")
	}
	return convertProgram(g)
}
