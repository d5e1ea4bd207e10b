package seqfmt

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Renderer renders a borrowed slice as delimiter-joined text between a pair
// of terminator runes. The zero value is not useful; construct one with
// [Display]. Configuration methods use value receivers and return the updated
// renderer, so calls chain and a configured renderer can be rendered any
// number of times.
type Renderer[T any] struct {
	items []T
	style Style
}

// Display returns a Renderer over items with the default style
// ("[1, 2, 3]"). The slice is borrowed, never copied or mutated.
func Display[T any](items []T) Renderer[T] {
	return Renderer[T]{items: items, style: Default()}
}

// Delimiter sets the rune written between consecutive elements.
// Any rune is accepted.
func (r Renderer[T]) Delimiter(d rune) Renderer[T] {
	r.style.Delimiter = d
	return r
}

// Terminator sets the runes framing the output. open and close may be equal.
func (r Renderer[T]) Terminator(open, close rune) Renderer[T] {
	r.style.Open = open
	r.style.Close = close
	return r
}

// Space controls whether a single space follows each delimiter.
func (r Renderer[T]) Space(on bool) Renderer[T] {
	r.style.Space = on
	return r
}

// Style replaces the whole configuration at once.
func (r Renderer[T]) Style(s Style) Renderer[T] {
	r.style = s
	return r
}

// Render writes the formatted sequence to w: the opening terminator, each
// element's text with the delimiter (and optional space) between consecutive
// elements, then the closing terminator. Nothing follows the last element but
// the closing terminator; no newline is written. The first write error from w
// is returned as-is and rendering stops there.
func (r Renderer[T]) Render(w io.Writer) error {
	if err := writeRune(w, r.style.Open); err != nil {
		return err
	}
	last := len(r.items) - 1
	for i, item := range r.items {
		if err := writeItem(w, item); err != nil {
			return err
		}
		if i == last {
			break
		}
		if err := writeRune(w, r.style.Delimiter); err != nil {
			return err
		}
		if r.style.Space {
			if err := writeRune(w, ' '); err != nil {
				return err
			}
		}
	}
	return writeRune(w, r.style.Close)
}

// String renders the sequence into a string. It implements [fmt.Stringer].
func (r Renderer[T]) String() string {
	var b strings.Builder
	_ = r.Render(&b) // strings.Builder writes cannot fail
	return b.String()
}

// writeItem writes one element's textual representation: String() when the
// element is a [fmt.Stringer], otherwise the %v formatting.
func writeItem[T any](w io.Writer, item T) error {
	if str, ok := any(item).(fmt.Stringer); ok {
		_, err := io.WriteString(w, str.String())
		return err
	}
	_, err := fmt.Fprintf(w, "%v", item)
	return err
}

// itemString is the buffered counterpart of writeItem, used for measuring.
func itemString[T any](item T) string {
	if str, ok := any(item).(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", item)
}

// writeRune encodes r through a stack buffer so single-rune writes allocate
// nothing.
func writeRune(w io.Writer, r rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	_, err := w.Write(buf[:n])
	return err
}
