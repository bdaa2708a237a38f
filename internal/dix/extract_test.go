package dix

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleDix = `<?xml version="1.0" encoding="UTF-8"?>
<dictionary>
  <section id="main" type="standard">
    <e><p><l>cat<s n="n"/></l><r>gato<s n="n"/><s n="m"/></r></p></e>
    <e><p><l>ice<b/>cream</l><r>helado</r></p></e>
    <e><p><l>broken</l></p></e>
    <e><p><l>dog</l><r>perro</r></p></e>
    <e><i>ignored<s n="adv"/></i></e>
  </section>
</dictionary>
`

func TestExtract(t *testing.T) {
	results := Extract(sampleDix)

	if len(results) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(results))
	}

	var entries []Entry
	var failed []Result
	for _, r := range results {
		if r.OK() {
			entries = append(entries, r.Entry)
		} else {
			failed = append(failed, r)
		}
	}

	want := []Entry{
		{Source: "cat", Target: "gato"},
		{Source: "ice cream", Target: "helado"},
		{Source: "dog", Target: "perro"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Extract() entries = %+v, want %+v", entries, want)
	}

	if len(failed) != 1 {
		t.Fatalf("Expected 1 failed record, got %d", len(failed))
	}
	if failed[0].Raw != "<l>broken</l>" {
		t.Errorf("Expected raw record '<l>broken</l>', got %q", failed[0].Raw)
	}
	if !errors.Is(failed[0].Err, ErrMissingTarget) {
		t.Errorf("Expected ErrMissingTarget, got %v", failed[0].Err)
	}
}

func TestExtract_NoRecords(t *testing.T) {
	if got := Extract("<dictionary></dictionary>"); got != nil {
		t.Errorf("Expected nil for text without records, got %v", got)
	}
	if got := Extract(""); got != nil {
		t.Errorf("Expected nil for empty text, got %v", got)
	}
}

func TestExtract_SeveralRecordsOnOneLine(t *testing.T) {
	text := "<p><l>a</l><r>b</r></p><p><l>c</l><r>d</r></p>"
	results := Extract(text)

	if len(results) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(results))
	}
	if results[1].Entry != (Entry{Source: "c", Target: "d"}) {
		t.Errorf("Unexpected second entry: %+v", results[1].Entry)
	}
}

func TestExtract_RecordSpanningLines(t *testing.T) {
	text := "<p>\n<l>cat</l>\n<r>gato</r>\n</p>"
	if got := Extract(text); len(got) != 0 {
		t.Errorf("Expected multi-line record to be ignored, got %v", got)
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Entry
		wantErr error
	}{
		{
			name: "plain",
			raw:  "<l>cat</l><r>gato</r>",
			want: Entry{Source: "cat", Target: "gato"},
		},
		{
			name: "whitespace",
			raw:  "<l> foo   bar </l><r>baz</r>",
			want: Entry{Source: "foo bar", Target: "baz"},
		},
		{
			name: "inline tags",
			raw:  "<l>foo<b>bar</b></l><r>qux</r>",
			want: Entry{Source: "foo bar", Target: "qux"},
		},
		{
			name: "first section wins",
			raw:  "<l>one</l><r>uno</r><l>two</l><r>dos</r>",
			want: Entry{Source: "one", Target: "uno"},
		},
		{
			name:    "missing l",
			raw:     "<r>gato</r>",
			wantErr: ErrMissingSource,
		},
		{
			name:    "missing r",
			raw:     "<l>cat</l>",
			wantErr: ErrMissingTarget,
		},
		{
			name:    "only tags",
			raw:     "<l><b/></l><r>gato</r>",
			wantErr: ErrEmptyText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntry(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseEntry(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEntry(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtract_NoMarkupLeft(t *testing.T) {
	for _, r := range Extract(sampleDix) {
		if !r.OK() {
			continue
		}
		for _, s := range []string{r.Entry.Source, r.Entry.Target} {
			if strings.ContainsAny(s, "<>") {
				t.Errorf("Markup left in %q", s)
			}
		}
	}
}
