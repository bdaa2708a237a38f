package dix

import (
	"errors"
	"testing"
)

func TestParseLangPair(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    LangPair
		wantErr bool
	}{
		{
			name: "apertium naming",
			path: "apertium-en-es.en-es.dix",
			want: LangPair{Source: "en", Target: "es"},
		},
		{
			name: "with directory",
			path: "/data/apertium/apertium-eo-fr.eo-fr.dix",
			want: LangPair{Source: "eo", Target: "fr"},
		},
		{
			name: "relative directory containing dots",
			path: "./v1.2/apertium-hbs-slv.hbs-slv.dix",
			want: LangPair{Source: "hbs", Target: "slv"},
		},
		{
			name: "extra codes are ignored",
			path: "dict.en-es-x.dix",
			want: LangPair{Source: "en", Target: "es"},
		},
		{
			name:    "no dot",
			path:    "dictionary",
			wantErr: true,
		},
		{
			name:    "no dash in segment",
			path:    "apertium.enes.dix",
			wantErr: true,
		},
		{
			name:    "empty target code",
			path:    "apertium.en-.dix",
			wantErr: true,
		},
		{
			name:    "empty source code",
			path:    "apertium.-es.dix",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLangPair(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLangPair(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLangPair(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseLangPair_TypedError(t *testing.T) {
	_, err := ParseLangPair("/tmp/dictionary.dix")
	if err == nil {
		t.Fatal("Expected error for file name without language pair")
	}

	if !errors.Is(err, ErrFilenameFormat) {
		t.Errorf("Expected error to wrap ErrFilenameFormat, got %v", err)
	}

	var fnErr *FilenameError
	if !errors.As(err, &fnErr) {
		t.Fatalf("Expected *FilenameError, got %T", err)
	}
	if fnErr.Name != "dictionary.dix" {
		t.Errorf("Expected Name 'dictionary.dix', got '%s'", fnErr.Name)
	}
}

func TestLangPairFileName(t *testing.T) {
	pair := LangPair{Source: "en", Target: "es"}

	if got := pair.FileName("hunapertium"); got != "hunapertium-en-es.dic" {
		t.Errorf("FileName() = %s, want hunapertium-en-es.dic", got)
	}
	if got := pair.Reverse().FileName("hunapertium"); got != "hunapertium-es-en.dic" {
		t.Errorf("Reverse().FileName() = %s, want hunapertium-es-en.dic", got)
	}
	if got := pair.String(); got != "en-es" {
		t.Errorf("String() = %s, want en-es", got)
	}
}
