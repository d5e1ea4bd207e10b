// Package seqfmt renders slices and other sequences as configurable,
// bracket-delimited text, streaming straight to an [io.Writer] with no
// intermediate string.
//
// The central entry point is [Display], which borrows a slice and returns a
// [Renderer] with chainable configuration:
//
//	nums := []int{1, 2, 3, 4, 5}
//	fmt.Println(seqfmt.Display(nums))                     // [1, 2, 3, 4, 5]
//	fmt.Println(seqfmt.Display(nums).Delimiter(';'))      // [1; 2; 3; 4; 5]
//	fmt.Println(seqfmt.Display(nums).Terminator('{', '}')) // {1, 2, 3, 4, 5}
//
// Each setter returns an updated copy, so calls chain in any order and the
// same configured renderer can be rendered repeatedly. [Renderer.Render]
// writes directly to a sink; [Renderer.String] is the buffered convenience.
//
// # Elements
//
// Elements that implement [fmt.Stringer] render via String; everything else
// renders via the %v verb. Empty slices render as just the terminator pair.
//
// # Styles
//
// [Style] captures a whole configuration as a value. Presets are available
// by name through [ParseStyle] ("list", "tuple", "set", "angle"), and Style
// marshals to and from YAML and JSON for config files, with runes
// represented as one-character strings.
//
// # Streaming
//
// [RenderSeq] and [RenderChan] render from an [iter.Seq] or a channel in a
// single pass, for sequences whose length is not known up front.
//
// # Errors
//
// The only rendering failure is the sink rejecting a write; it is returned
// verbatim and rendering stops at that point. Style parsing exposes the
// sentinels [ErrUnknownStyle] and [ErrInvalidStyle].
package seqfmt
