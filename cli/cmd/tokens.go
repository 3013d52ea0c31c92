package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/mjml/parser"
	"github.com/ardnew/mjml/pkg"
)

// Tokens prints the token stream of a document, one token per line:
//
//	element-start   0..5    mjml
//	attribute       6..15   lang="fr"
//	element-end     15..16  >
type Tokens struct {
	File string `arg:"" default:"-" help:"Document to tokenize, or '-' for stdin." name:"file"`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) error {
	srcs := Sources(ctx, []string{t.File})
	if len(srcs) == 0 {
		return nil
	}

	text, err := srcs[0].Read()
	if err != nil {
		return err
	}

	var sb strings.Builder

	c := parser.NewCursor(text, parser.Origin{})

	for {
		tok, err := c.Next()
		if err != nil {
			_, _ = fmt.Fprint(outputFrom(ctx), sb.String())

			return pkg.ErrParse.Wrap(err).With(slog.String("file", srcs[0].Name))
		}

		if tok == nil {
			break
		}

		fmt.Fprintf(&sb, "%-15s %-7s %s\n", tok.Kind(), tok.Span(), describe(tok))
	}

	_, err = fmt.Fprint(outputFrom(ctx), sb.String())

	return err
}

func describe(tok parser.Token) string {
	switch t := tok.(type) {
	case parser.StartToken:
		return t.Local
	case parser.CloseToken:
		return t.Local
	case parser.EndToken:
		if t.Empty {
			return "/>"
		}

		return ">"
	case parser.AttributeToken:
		if t.Value == nil {
			return t.Local
		}

		return t.Local + "=" + strconv.Quote(*t.Value)
	case parser.TextToken:
		return strconv.Quote(t.Text)
	case parser.CommentToken:
		return strconv.Quote(t.Text)
	default:
		return ""
	}
}
