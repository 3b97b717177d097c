package catalog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/a11yscan/a11yscan/internal/types"
	semver "github.com/blang/semver/v4"
	xxhash "github.com/cespare/xxhash/v2"
)

var (
	// ErrEmpty is returned when a catalog holds no templates.
	ErrEmpty = errors.New("catalog: no templates")
	// ErrInvalid wraps every structural validation failure.
	ErrInvalid = errors.New("catalog: invalid template")
	// ErrVersion is returned for schema versions this build cannot read.
	ErrVersion = errors.New("catalog: unsupported schema version")
)

// SupportedMajor is the catalog schema major version understood by this build.
const SupportedMajor = 1

// Variant is one concrete example of a template: the offending snippet, the
// corrected snippet and where it lives.
type Variant struct {
	Element  string `yaml:"element" json:"element"`
	Fix      string `yaml:"fix" json:"fix"`
	FilePath string `yaml:"file" json:"file"`
	Line     int    `yaml:"line" json:"line"`
	Note     string `yaml:"note,omitempty" json:"note,omitempty"`
}

// Template describes one class of accessibility defect.
type Template struct {
	ID                string         `yaml:"id" json:"id"`
	Severity          types.Severity `yaml:"severity" json:"severity"`
	Rule              string         `yaml:"rule" json:"rule"`
	StandardReference string         `yaml:"wcag" json:"wcag"`
	Description       string         `yaml:"description" json:"description"`
	Variants          []Variant      `yaml:"variants" json:"variants"`
}

// Catalog is an ordered set of templates. Order is significant: the
// synthesizer draws one shuffle key per template in this order.
type Catalog struct {
	Version   string     `yaml:"version" json:"version"`
	Templates []Template `yaml:"templates" json:"templates"`
}

// Len returns the number of templates.
func (c Catalog) Len() int { return len(c.Templates) }

// Validate checks the structural preconditions synthesis relies on.
func (c Catalog) Validate() error {
	if err := c.checkVersion(); err != nil {
		return err
	}
	if len(c.Templates) == 0 {
		return ErrEmpty
	}
	seen := make(map[string]bool, len(c.Templates))
	for i, t := range c.Templates {
		if t.ID == "" {
			return fmt.Errorf("%w: template %d has no id", ErrInvalid, i)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalid, t.ID)
		}
		seen[t.ID] = true
		if t.Rule == "" {
			return fmt.Errorf("%w: %s: empty rule", ErrInvalid, t.ID)
		}
		if !t.Severity.Valid() {
			return fmt.Errorf("%w: %s: unknown severity %q", ErrInvalid, t.ID, t.Severity)
		}
		if len(t.Variants) == 0 {
			return fmt.Errorf("%w: %s: no variants", ErrInvalid, t.ID)
		}
		for j, v := range t.Variants {
			if v.Line < 1 {
				return fmt.Errorf("%w: %s: variant %d: line %d is not a positive line number", ErrInvalid, t.ID, j, v.Line)
			}
		}
	}
	return nil
}

func (c Catalog) checkVersion() error {
	if c.Version == "" {
		return nil
	}
	v, err := semver.ParseTolerant(c.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrVersion, c.Version, err)
	}
	if v.Major != SupportedMajor {
		return fmt.Errorf("%w: %s (want %d.x)", ErrVersion, v, SupportedMajor)
	}
	return nil
}

// Lookup returns the template with the given id.
func (c Catalog) Lookup(id string) (Template, bool) {
	for _, t := range c.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// IDs returns template ids in catalog order.
func (c Catalog) IDs() []string {
	out := make([]string, len(c.Templates))
	for i, t := range c.Templates {
		out[i] = t.ID
	}
	return out
}

// Rules returns the rule names in catalog order.
func (c Catalog) Rules() []string {
	out := make([]string, len(c.Templates))
	for i, t := range c.Templates {
		out[i] = t.Rule
	}
	return out
}

// Clone returns a deep copy so callers can hand out catalogs without sharing
// variant slices.
func (c Catalog) Clone() Catalog {
	out := Catalog{Version: c.Version, Templates: make([]Template, len(c.Templates))}
	for i, t := range c.Templates {
		t.Variants = append([]Variant(nil), t.Variants...)
		out.Templates[i] = t
	}
	return out
}

// Digest is a stable xxhash64 fingerprint of the catalog content, in hex.
// Two catalogs with the same digest produce identical reports for every input.
func (c Catalog) Digest() string {
	h := xxhash.New()
	field := func(s string) {
		_, _ = h.WriteString(strconv.Itoa(len(s)))
		_, _ = h.WriteString(":")
		_, _ = h.WriteString(s)
	}
	var buf [4]byte
	for _, t := range c.Templates {
		field(t.ID)
		field(string(t.Severity))
		field(t.Rule)
		field(t.StandardReference)
		field(t.Description)
		for _, v := range t.Variants {
			field(v.Element)
			field(v.Fix)
			field(v.FilePath)
			field(v.Note)
			line, err := safecast.Conv[uint32](v.Line)
			if err != nil {
				field("line:" + strconv.Itoa(v.Line))
				continue
			}
			binary.BigEndian.PutUint32(buf[:], line)
			_, _ = h.Write(buf[:])
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
