package seqfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownStyle = errors.New("unknown style")
	ErrInvalidStyle = errors.New("invalid style")
)

// Style is a complete rendering configuration. It is a plain value: copy it,
// modify fields, pass it to [Renderer.Style], [RenderSeq], or [RenderChan].
type Style struct {
	Delimiter rune // written between consecutive elements
	Open      rune // opening terminator
	Close     rune // closing terminator
	Space     bool // single space after each delimiter
}

// Default returns the default style: comma delimiter, square-bracket
// terminators, spaced. Renders as "[1, 2, 3]".
func Default() Style {
	return Style{Delimiter: ',', Open: '[', Close: ']', Space: true}
}

var styles = map[string]Style{
	"list":  {Delimiter: ',', Open: '[', Close: ']', Space: true},
	"tuple": {Delimiter: ',', Open: '(', Close: ')', Space: true},
	"set":   {Delimiter: ',', Open: '{', Close: '}', Space: true},
	"angle": {Delimiter: ',', Open: '<', Close: '>', Space: true},
}

// StyleNames returns the preset style names in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseStyle resolves a preset style name, typically from a CLI flag.
func ParseStyle(s string) (Style, error) {
	if st, ok := styles[s]; ok {
		return st, nil
	}
	return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// styleDoc is the serialized form of a Style. Runes travel as one-rune
// strings so documents stay readable.
type styleDoc struct {
	Delimiter string `yaml:"delimiter" json:"delimiter"`
	Open      string `yaml:"open" json:"open"`
	Close     string `yaml:"close" json:"close"`
	Space     *bool  `yaml:"space" json:"space"`
}

func (s Style) doc() styleDoc {
	space := s.Space
	return styleDoc{
		Delimiter: string(s.Delimiter),
		Open:      string(s.Open),
		Close:     string(s.Close),
		Space:     &space,
	}
}

// fromDoc builds a Style from its serialized form. Omitted fields fall back
// to the default style; multi-rune fields are rejected.
func (s *Style) fromDoc(doc styleDoc) error {
	out := Default()
	if doc.Space != nil {
		out.Space = *doc.Space
	}
	for _, f := range []struct {
		name  string
		value string
		dst   *rune
	}{
		{"delimiter", doc.Delimiter, &out.Delimiter},
		{"open", doc.Open, &out.Open},
		{"close", doc.Close, &out.Close},
	} {
		if f.value == "" {
			continue
		}
		if utf8.RuneCountInString(f.value) != 1 {
			return fmt.Errorf("%w: %s %q is not a single character", ErrInvalidStyle, f.name, f.value)
		}
		r, _ := utf8.DecodeRuneInString(f.value)
		*f.dst = r
	}
	*s = out
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Style) MarshalYAML() (any, error) {
	return s.doc(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Style) UnmarshalYAML(value *yaml.Node) error {
	var doc styleDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	return s.fromDoc(doc)
}

// MarshalJSON implements json.Marshaler.
func (s Style) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.doc())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Style) UnmarshalJSON(data []byte) error {
	var doc styleDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return s.fromDoc(doc)
}
