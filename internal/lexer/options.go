package lexer

import (
	"wasmc/internal/diag"
	"wasmc/internal/source"
)

// Options configures a Lexer. Reporter may be nil, in which case lexical
// errors are silently skipped but scanning still continues.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
