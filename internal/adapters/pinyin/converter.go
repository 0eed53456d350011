// Package pinyin romanizes Han characters.
package pinyin

import (
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/width"
)

var _ ports.Converter = (*Converter)(nil)

// Converter implements ports.Converter using the go-pinyin dictionary.
//
// Runs of Han characters are replaced by their syllables joined without a
// separator. Everything else is kept, with full-width forms folded to their
// narrow equivalents.
type Converter struct {
	full     gopinyin.Args
	initials gopinyin.Args
}

// NewConverter creates a Converter.
func NewConverter() *Converter {
	return &Converter{
		full:     newArgs(gopinyin.Normal),
		initials: newArgs(gopinyin.FirstLetter),
	}
}

func newArgs(style int) gopinyin.Args {
	args := gopinyin.NewArgs()
	args.Style = style
	// Keep characters the dictionary does not know instead of dropping them.
	args.Fallback = func(r rune, _ gopinyin.Args) []string {
		return []string{string(r)}
	}
	return args
}

// Convert returns the romanized form of text.
func (c *Converter) Convert(text string, style domain.PinyinStyle) (string, error) {
	var args gopinyin.Args
	switch style {
	case domain.PinyinFull:
		args = c.full
	case domain.PinyinInitials:
		args = c.initials
	default:
		return "", zerr.With(domain.ErrConversionFailed, "style", string(style))
	}

	folded := width.Fold.String(text)
	if !HasHan(folded) {
		return folded, nil
	}

	var (
		out strings.Builder
		run strings.Builder
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		for _, syllable := range gopinyin.LazyPinyin(run.String(), args) {
			out.WriteString(syllable)
		}
		run.Reset()
	}

	for _, r := range folded {
		if unicode.Is(unicode.Han, r) {
			run.WriteRune(r)
			continue
		}
		flush()
		out.WriteRune(r)
	}
	flush()

	return out.String(), nil
}

// HasHan reports whether text contains at least one Han character.
func HasHan(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
