package image

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/colorbmp/internal/colour"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		width   string
		height  string
		colour  string
		want    Request
		wantErr error
	}{
		{name: "typical", width: "640", height: "480", colour: "red", want: Request{640, 480, colour.Red}},
		{name: "minimum", width: "10", height: "10", colour: "blue", want: Request{10, 10, colour.Blue}},
		{name: "maximum", width: "1000", height: "1000", colour: "green", want: Request{1000, 1000, colour.Green}},
		{name: "colour prefix", width: "20", height: "30", colour: "ruby", want: Request{20, 30, colour.Red}},
		{name: "single letter", width: "20", height: "30", colour: "g", want: Request{20, 30, colour.Green}},
		{name: "width too small", width: "9", height: "10", colour: "red", wantErr: ErrWidthOutOfRange},
		{name: "width too large", width: "1001", height: "10", colour: "red", wantErr: ErrWidthOutOfRange},
		{name: "height too small", width: "10", height: "9", colour: "red", wantErr: ErrHeightOutOfRange},
		{name: "height too large", width: "10", height: "1001", colour: "red", wantErr: ErrHeightOutOfRange},
		{name: "negative width", width: "-10", height: "10", colour: "red", wantErr: ErrWidthOutOfRange},
		{name: "width overflows int", width: "99999999999999999999", height: "10", colour: "red", wantErr: ErrWidthOutOfRange},
		{name: "height underflows int", width: "10", height: "-99999999999999999999", colour: "red", wantErr: ErrHeightOutOfRange},
		{name: "width not a number", width: "abc", height: "10", colour: "red", wantErr: ErrNotANumber},
		{name: "height not a number", width: "10", height: "12px", colour: "red", wantErr: ErrNotANumber},
		{name: "empty width", width: "", height: "10", colour: "red", wantErr: ErrNotANumber},
		{name: "purple", width: "10", height: "10", colour: "purple", wantErr: ErrUnknownColour},
		{name: "empty colour", width: "10", height: "10", colour: "", wantErr: ErrUnknownColour},
		{name: "width checked first", width: "5", height: "5", colour: "purple", wantErr: ErrWidthOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest(tt.width, tt.height, tt.colour)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseRequest() error = %v, want %v", err, tt.wantErr)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("ParseRequest() error should be a *ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRequest() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	tests := []struct {
		width, height, colour string
		contains              string
	}{
		{"9", "10", "red", "choose width between 10 and 1000"},
		{"10", "2000", "red", "choose height between 10 and 1000"},
		{"ten", "10", "red", "width must be a whole number"},
		{"10", "10", "purple", `"red", "green", or "blue"`},
		{"99999999999999999999", "10", "red", "choose width between 10 and 1000"},
	}

	for _, tt := range tests {
		_, err := ParseRequest(tt.width, tt.height, tt.colour)
		if err == nil {
			t.Fatalf("expected error for %v", tt)
		}
		if !strings.Contains(err.Error(), tt.contains) {
			t.Errorf("error %q should contain %q", err.Error(), tt.contains)
		}
	}
}

func TestRequestValidate(t *testing.T) {
	if err := (Request{Width: 10, Height: 1000, Colour: colour.Green}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := (Request{Width: 0, Height: 10, Colour: colour.Red}).Validate(); !errors.Is(err, ErrWidthOutOfRange) {
		t.Errorf("Validate() error = %v, want ErrWidthOutOfRange", err)
	}
	if err := (Request{Width: 10, Height: 1001, Colour: colour.Red}).Validate(); !errors.Is(err, ErrHeightOutOfRange) {
		t.Errorf("Validate() error = %v, want ErrHeightOutOfRange", err)
	}
	if err := (Request{Width: 10, Height: 10}).Validate(); !errors.Is(err, ErrUnknownColour) {
		t.Errorf("Validate() error = %v, want ErrUnknownColour", err)
	}
}

func TestRequestString(t *testing.T) {
	r := Request{Width: 640, Height: 480, Colour: colour.Red}
	if got := r.String(); got != "640x480 red" {
		t.Errorf("String() = %q, want %q", got, "640x480 red")
	}
}

func TestParseSingleArguments(t *testing.T) {
	if w, err := ParseWidth("10"); err != nil || w != 10 {
		t.Errorf("ParseWidth(10) = %d, %v", w, err)
	}
	if _, err := ParseWidth("-5"); !errors.Is(err, ErrWidthOutOfRange) {
		t.Errorf("ParseWidth(-5) error = %v, want ErrWidthOutOfRange", err)
	}
	if h, err := ParseHeight("1000"); err != nil || h != 1000 {
		t.Errorf("ParseHeight(1000) = %d, %v", h, err)
	}
	if _, err := ParseHeight("-5"); !errors.Is(err, ErrHeightOutOfRange) {
		t.Errorf("ParseHeight(-5) error = %v, want ErrHeightOutOfRange", err)
	}
	if c, err := ParseColour("blue"); err != nil || c != colour.Blue {
		t.Errorf("ParseColour(blue) = %v, %v", c, err)
	}
	if _, err := ParseColour("-5"); !errors.Is(err, ErrUnknownColour) {
		t.Errorf("ParseColour(-5) error = %v, want ErrUnknownColour", err)
	}
}

func TestColourChoices(t *testing.T) {
	if got := ColourChoices(); got != `"red", "green", or "blue"` {
		t.Errorf("ColourChoices() = %s", got)
	}
}
