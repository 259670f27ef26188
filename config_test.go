package glyphatlas

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/gogpu/glyphatlas/codec"
	"github.com/gogpu/glyphatlas/glyph"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Size != 256 || cfg.Padding != 1 {
		t.Errorf("DefaultConfig() = %+v, want {256 1}", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{"ok", Config{Size: 8, Padding: 1}, ""},
		{"max", Config{Size: MaxSize, Padding: 4}, ""},
		{"zero size", Config{Size: 0, Padding: 1}, "Size"},
		{"too large", Config{Size: MaxSize + 1, Padding: 1}, "Size"},
		{"zero padding", Config{Size: 64, Padding: 0}, "Padding"},
		{"padding too large", Config{Size: 8, Padding: 4}, "Padding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if ce.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ce.Field, tt.wantField)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"overflow", fmt.Errorf("wrap: %w", &OverflowError{Width: 8, Height: 8}), KindOverflow},
		{"image", &codec.DecodeError{Err: codec.ErrIndexedColor}, KindDecode},
		{"font", fmt.Errorf("wrap: %w", &glyph.DecodeError{Backend: "ximage", Err: errBoom}), KindDecode},
		{"no glyph", fmt.Errorf("font %q: %w", "mono", fmt.Errorf("%w: %q", glyph.ErrNoGlyph, 'A')), KindDecode},
		{"config", &ConfigError{Field: "Size", Reason: "x"}, KindArgument},
		{"glyph size", fmt.Errorf("%w: %v", glyph.ErrInvalidSize, 0), KindArgument},
		{"tile", &TileError{Width: 1, Height: 1}, KindArgument},
		{"name", &NameError{Kind: "icon", Err: ErrDuplicateName}, KindArgument},
		{"backend", &glyph.BackendError{Name: "x"}, KindArgument},
		{"finalized", ErrFinalized, KindArgument},
		{"path", fmt.Errorf("open: %w", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}), KindIO},
		{"other", errBoom, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	want := map[Kind]string{
		KindNone:     "none",
		KindIO:       "io",
		KindDecode:   "decode",
		KindOverflow: "overflow",
		KindArgument: "argument",
		KindOther:    "other",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), s)
		}
	}
}

func TestRect(t *testing.T) {
	a := Rect{X: 2, Y: 2, Width: 4, Height: 4}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 3, Y: 3, Width: 1, Height: 1}, true},
		{"touching", Rect{X: 6, Y: 2, Width: 2, Height: 2}, false},
		{"apart", Rect{X: 10, Y: 10, Width: 1, Height: 1}, false},
		{"empty", Rect{X: 3, Y: 3}, false},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s: Overlaps(%v) = %v, want %v", tt.name, tt.b, got, tt.want)
		}
	}

	if g := a.Grow(1); g != (Rect{X: 1, Y: 1, Width: 6, Height: 6}) {
		t.Errorf("Grow(1) = %v", g)
	}
	if a.String() != "(2,2 4x4)" {
		t.Errorf("String() = %q", a.String())
	}
	if a.Area() != 16 || (Rect{Width: -1, Height: 3}).Area() != 0 {
		t.Error("Area() mismatch")
	}
}
