package seqfmt

import "github.com/mattn/go-runewidth"

// Width returns the number of terminal display cells the output of
// [Renderer.Render] would occupy, without rendering it. Wide (CJK) runes
// count as two cells. Useful for callers laying out rendered sequences
// themselves.
func (r Renderer[T]) Width() int {
	w := runewidth.RuneWidth(r.style.Open) + runewidth.RuneWidth(r.style.Close)
	sep := runewidth.RuneWidth(r.style.Delimiter)
	if r.style.Space {
		sep++
	}
	for i, item := range r.items {
		if i > 0 {
			w += sep
		}
		w += runewidth.StringWidth(itemString(item))
	}
	return w
}
