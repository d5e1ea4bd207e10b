package seqfmt

import (
	"io"
	"iter"
)

// RenderSeq renders the elements of seq to w in a single pass, using style s.
// The sequence length need not be known up front: the delimiter (and optional
// space) is written before every element but the first, which produces the
// same output [Renderer.Render] would for the equivalent slice. The first
// write error from w is returned as-is and the pass stops there.
func RenderSeq[T any](w io.Writer, s Style, seq iter.Seq[T]) error {
	if err := writeRune(w, s.Open); err != nil {
		return err
	}
	first := true
	var streamErr error
	seq(func(item T) bool {
		if !first {
			if streamErr = writeRune(w, s.Delimiter); streamErr != nil {
				return false
			}
			if s.Space {
				if streamErr = writeRune(w, ' '); streamErr != nil {
					return false
				}
			}
		}
		first = false
		streamErr = writeItem(w, item)
		return streamErr == nil
	})
	if streamErr != nil {
		return streamErr
	}
	return writeRune(w, s.Close)
}

// RenderChan renders elements received from ch until it closes.
// It is a thin wrapper around [RenderSeq].
func RenderChan[T any](w io.Writer, s Style, ch <-chan T) error {
	return RenderSeq(w, s, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
