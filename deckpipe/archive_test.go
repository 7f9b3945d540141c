package deckpipe

import (
	"errors"
	"fmt"
	"testing"
)

func TestExtractSlides_NumericOrder(t *testing.T) {
	// WHAT: slide payloads come back in numeric slideN order.
	// WHY: archive entry order is arbitrary; lexicographic order would put
	// slide10 before slide2.
	entries := []zipEntry{
		{"ppt/slides/slide10.xml", slideXML([]string{"ten"})},
		{"ppt/slides/slide2.xml", slideXML([]string{"two"})},
		{"ppt/slides/slide1.xml", slideXML([]string{"one"})},
	}
	payloads, err := extractSlides(buildDeck(t, entries))
	if err != nil {
		t.Fatal(err)
	}
	if len(payloads) != 3 {
		t.Fatalf("payloads: got %d, want 3", len(payloads))
	}

	want := []string{"one", "two", "ten"}
	for i, raw := range payloads {
		s, err := parseSlide(i+1, raw)
		if err != nil {
			t.Fatal(err)
		}
		if len(s.Paragraphs) != 1 || s.Paragraphs[0] != want[i] {
			t.Fatalf("payload %d: got %v, want [%s]", i, s.Paragraphs, want[i])
		}
	}
}

func TestExtractSlides_NonSlideEntriesIgnored(t *testing.T) {
	entries := []zipEntry{
		{"ppt/slides/slide1.xml", slideXML([]string{"real"})},
		{"ppt/slides/notes1.xml", "<notes/>"},
		{"ppt/media/image1.png", "binary"},
		{"ppt/slides/slideA.xml", "<sld/>"},
	}
	payloads, err := extractSlides(buildDeck(t, entries))
	if err != nil {
		t.Fatal(err)
	}
	if len(payloads) != 1 {
		t.Fatalf("payloads: got %d, want 1", len(payloads))
	}
}

func TestExtractSlides_ZipSlipRejected(t *testing.T) {
	// WHY: an entry escaping the extraction root must fail the whole
	// archive, never write outside it.
	entries := []zipEntry{
		{"ppt/slides/slide1.xml", slideXML([]string{"ok"})},
		{"../../escape.xml", "evil"},
	}
	_, err := extractSlides(buildDeck(t, entries))

	var archiveErr *ArchiveError
	if !errors.As(err, &archiveErr) {
		t.Fatalf("expected ArchiveError, got %v", err)
	}
	if !errors.Is(err, errPathEscape) {
		t.Fatalf("expected path escape cause, got %v", archiveErr.Err)
	}
}

func TestExtractSlides_NoSlides(t *testing.T) {
	entries := []zipEntry{{"[Content_Types].xml", "<Types/>"}}
	_, err := extractSlides(buildDeck(t, entries))

	var archiveErr *ArchiveError
	if !errors.As(err, &archiveErr) {
		t.Fatalf("expected ArchiveError, got %v", err)
	}
	if !errors.Is(err, errNoSlides) {
		t.Fatalf("expected no-slides cause, got %v", archiveErr.Err)
	}
}

func TestExtractSlides_NotAnArchive(t *testing.T) {
	_, err := extractSlides([]byte("this is not a zip file"))

	var archiveErr *ArchiveError
	if !errors.As(err, &archiveErr) {
		t.Fatalf("expected ArchiveError, got %v", err)
	}
	if archiveErr.Op != "open" {
		t.Fatalf("op: got %q, want open", archiveErr.Op)
	}
}

func TestArchiveError_Message(t *testing.T) {
	err := &ArchiveError{Op: "extract", Entry: "../x", Err: errPathEscape}
	msg := err.Error()
	if msg != fmt.Sprintf("archive extract %q: %v", "../x", errPathEscape) {
		t.Fatalf("message: %q", msg)
	}
}
